package pptx

import (
	"strings"
	"testing"
)

func TestTemplateByName_Builtins(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"default", TemplateDefault},
		{"professional", TemplateProfessional},
		{"Modern", TemplateModern},
		{"MINIMAL", TemplateMinimal},
		{"unknown", TemplateDefault},
		{"", TemplateDefault},
	}
	for _, c := range cases {
		if got := TemplateByName(c.in).Name; got != c.want {
			t.Errorf("TemplateByName(%q).Name = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTemplateColors(t *testing.T) {
	colors := TemplateByName("professional").Colors
	if colors.TextPrimary != "1F1F1F" {
		t.Errorf("text primary = %q, want %q", colors.TextPrimary, "1F1F1F")
	}
	if colors.Accent1 != "2E75B6" {
		t.Errorf("accent1 = %q, want %q", colors.Accent1, "2E75B6")
	}
}

func TestTemplateFonts(t *testing.T) {
	fonts := TemplateByName("modern").Fonts
	if fonts.TitleFont != "Roboto" {
		t.Errorf("title font = %q, want %q", fonts.TitleFont, "Roboto")
	}
	if fonts.CodeFont != "Fira Code" {
		t.Errorf("code font = %q, want %q", fonts.CodeFont, "Fira Code")
	}
}

func TestMinimalLayout_WiderMargins(t *testing.T) {
	layout := TemplateByName("minimal").Layout
	if layout.MarginTop != 914400 || layout.MarginLeft != 1371600 {
		t.Errorf("margins = top %d left %d, want 914400 and 1371600", layout.MarginTop, layout.MarginLeft)
	}
	if layout.SlideWidth != 9144000 || layout.TitleHeight != 1143000 {
		t.Errorf("base geometry changed: width %d title %d", layout.SlideWidth, layout.TitleHeight)
	}
}

func TestResolver_CustomTemplate(t *testing.T) {
	custom := Template{
		Name:   "Corporate",
		Colors: ThemeColors{Background: "101010", TextPrimary: "EEEEEE"},
		Fonts:  FontScheme{TitleFont: "Georgia", BodyFont: "Georgia", CodeFont: "Menlo"},
		Layout: baseLayout(),
	}
	r := NewResolver(custom)

	got := r.Resolve("corporate")
	if got.Colors.Background != "101010" {
		t.Errorf("background = %q, want %q", got.Colors.Background, "101010")
	}
	if got := r.Resolve("professional"); got.Name != TemplateProfessional {
		t.Errorf("builtin lookup = %q, want professional", got.Name)
	}
	if got := r.Resolve("missing"); got.Name != TemplateDefault {
		t.Errorf("unknown lookup = %q, want default", got.Name)
	}

	names := r.Names()
	if len(names) != 5 {
		t.Fatalf("len(names) = %d, want 5", len(names))
	}
	found := false
	for _, n := range names {
		if n == "corporate" {
			found = true
		}
	}
	if !found {
		t.Errorf("names = %v, custom template missing", names)
	}
}

func TestSlideMasterXML_UsesTemplateStyling(t *testing.T) {
	xml := TemplateByName("modern").slideMasterXML()
	if !strings.Contains(xml, `<a:srgbClr val="F8F9FA"/>`) {
		t.Errorf("master missing background color")
	}
	if !strings.Contains(xml, `<a:latin typeface="Roboto"/>`) {
		t.Errorf("master missing title font")
	}
	if !strings.Contains(xml, `<p:sldLayoutId id="2147483649" r:id="rId1"/>`) {
		t.Errorf("master missing layout id")
	}
}

func TestThemeXML_ColorSlots(t *testing.T) {
	xml := TemplateByName("minimal").themeXML()
	// dk1 carries the primary text color, lt1 the background.
	if !strings.Contains(xml, "<a:dk1>\n                <a:srgbClr val=\"2C2C2C\"/>") {
		t.Errorf("dk1 not mapped to text primary")
	}
	if !strings.Contains(xml, "<a:lt1>\n                <a:srgbClr val=\"FFFFFF\"/>") {
		t.Errorf("lt1 not mapped to background")
	}
	if !strings.Contains(xml, `<a:srgbClr val="007ACC"/>`) {
		t.Errorf("accent1 missing")
	}
	if !strings.Contains(xml, `<a:latin typeface="Helvetica"/>`) {
		t.Errorf("major font missing")
	}
}
