package pptx

import (
	"fmt"
	"sort"
	"strings"
)

// Built-in template names.
const (
	TemplateDefault      = "default"
	TemplateProfessional = "professional"
	TemplateModern       = "modern"
	TemplateMinimal      = "minimal"
)

// Template bundles everything that styles a deck: colors, fonts and the
// layout grid. Custom templates are plain Template values with their own
// name.
type Template struct {
	Name   string
	Colors ThemeColors
	Fonts  FontScheme
	Layout LayoutSettings
}

// ThemeColors holds hex RGB values without a leading '#'.
type ThemeColors struct {
	Background    string
	TextPrimary   string
	TextSecondary string
	Accent1       string
	Accent2       string
	Accent3       string
}

// FontScheme names the typefaces used for titles, body text and code.
type FontScheme struct {
	TitleFont string
	BodyFont  string
	CodeFont  string
}

// LayoutSettings is the slide geometry in EMUs (914400 per inch).
type LayoutSettings struct {
	SlideWidth     int
	SlideHeight    int
	MarginTop      int
	MarginBottom   int
	MarginLeft     int
	MarginRight    int
	TitleHeight    int
	ContentSpacing int
}

// TemplateByName resolves a built-in template. Matching is
// case-insensitive; unknown names fall back to the default template.
func TemplateByName(name string) Template {
	switch strings.ToLower(name) {
	case TemplateProfessional:
		return professionalTemplate()
	case TemplateModern:
		return modernTemplate()
	case TemplateMinimal:
		return minimalTemplate()
	default:
		return defaultTemplate()
	}
}

// BuiltinTemplates lists the four built-in templates.
func BuiltinTemplates() []Template {
	return []Template{
		defaultTemplate(),
		professionalTemplate(),
		modernTemplate(),
		minimalTemplate(),
	}
}

func baseLayout() LayoutSettings {
	return LayoutSettings{
		SlideWidth:     9144000, // 10 inches
		SlideHeight:    6858000, // 7.5 inches
		MarginTop:      457200,  // 0.5 inches
		MarginBottom:   457200,
		MarginLeft:     685800, // 0.75 inches
		MarginRight:    685800,
		TitleHeight:    1143000, // 1.25 inches
		ContentSpacing: 228600,  // 0.25 inches
	}
}

func defaultTemplate() Template {
	return Template{
		Name: TemplateDefault,
		Colors: ThemeColors{
			Background:    "FFFFFF",
			TextPrimary:   "000000",
			TextSecondary: "666666",
			Accent1:       "4F81BD",
			Accent2:       "F79646",
			Accent3:       "9BBB59",
		},
		Fonts: FontScheme{
			TitleFont: "Calibri",
			BodyFont:  "Calibri",
			CodeFont:  "Consolas",
		},
		Layout: baseLayout(),
	}
}

func professionalTemplate() Template {
	return Template{
		Name: TemplateProfessional,
		Colors: ThemeColors{
			Background:    "FFFFFF",
			TextPrimary:   "1F1F1F",
			TextSecondary: "757575",
			Accent1:       "2E75B6",
			Accent2:       "C65911",
			Accent3:       "70AD47",
		},
		Fonts: FontScheme{
			TitleFont: "Segoe UI",
			BodyFont:  "Segoe UI",
			CodeFont:  "Consolas",
		},
		Layout: baseLayout(),
	}
}

func modernTemplate() Template {
	return Template{
		Name: TemplateModern,
		Colors: ThemeColors{
			Background:    "F8F9FA",
			TextPrimary:   "212529",
			TextSecondary: "6C757D",
			Accent1:       "007BFF",
			Accent2:       "FD7E14",
			Accent3:       "28A745",
		},
		Fonts: FontScheme{
			TitleFont: "Roboto",
			BodyFont:  "Roboto",
			CodeFont:  "Fira Code",
		},
		Layout: baseLayout(),
	}
}

func minimalTemplate() Template {
	layout := baseLayout()
	layout.MarginTop = 914400 // wider margins for breathing room
	layout.MarginBottom = 914400
	layout.MarginLeft = 1371600
	layout.MarginRight = 1371600
	return Template{
		Name: TemplateMinimal,
		Colors: ThemeColors{
			Background:    "FFFFFF",
			TextPrimary:   "2C2C2C",
			TextSecondary: "8C8C8C",
			Accent1:       "007ACC",
			Accent2:       "FF6B35",
			Accent3:       "32CD32",
		},
		Fonts: FontScheme{
			TitleFont: "Helvetica",
			BodyFont:  "Helvetica",
			CodeFont:  "Monaco",
		},
		Layout: layout,
	}
}

// Resolver maps template names to templates, letting configured custom
// templates extend the built-in set. Custom names shadow built-ins.
type Resolver struct {
	custom map[string]Template
}

// NewResolver builds a resolver over the built-in templates plus the given
// custom ones.
func NewResolver(custom ...Template) *Resolver {
	m := make(map[string]Template, len(custom))
	for _, t := range custom {
		m[strings.ToLower(t.Name)] = t
	}
	return &Resolver{custom: m}
}

// Resolve returns the template for name, falling back to the default
// template for unknown names.
func (r *Resolver) Resolve(name string) Template {
	if t, ok := r.custom[strings.ToLower(name)]; ok {
		return t
	}
	return TemplateByName(name)
}

// Names returns every resolvable template name, sorted.
func (r *Resolver) Names() []string {
	names := []string{TemplateDefault, TemplateProfessional, TemplateModern, TemplateMinimal}
	for name := range r.custom {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// slideMasterXML renders the slide master part with the template's
// background, text colors and fonts applied.
func (t Template) slideMasterXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<p:sldMaster xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" xmlns:r="http://schemas.openxmlformats.org/officeDocument/2006/relationships" xmlns:p="http://schemas.openxmlformats.org/presentationml/2006/main">
    <p:cSld>
        <p:bg>
            <p:bgRef idx="1001">
                <a:srgbClr val="%s"/>
            </p:bgRef>
        </p:bg>
        <p:spTree>
            <p:nvGrpSpPr>
                <p:cNvPr id="1" name=""/>
                <p:cNvGrpSpPr/>
                <p:nvPr/>
            </p:nvGrpSpPr>
            <p:grpSpPr>
                <a:xfrm>
                    <a:off x="0" y="0"/>
                    <a:ext cx="0" cy="0"/>
                    <a:chOff x="0" y="0"/>
                    <a:chExt cx="0" cy="0"/>
                </a:xfrm>
            </p:grpSpPr>
        </p:spTree>
    </p:cSld>
    <p:clrMap bg1="lt1" tx1="dk1" bg2="lt2" tx2="dk2" accent1="accent1" accent2="accent2" accent3="accent3" accent4="accent4" accent5="accent5" accent6="accent6" hlink="hlink" folHlink="folHlink"/>
    <p:sldLayoutIdLst>
        <p:sldLayoutId id="2147483649" r:id="rId1"/>
    </p:sldLayoutIdLst>
    <p:txStyles>
        <p:titleStyle>
            <a:lvl1pPr>
                <a:defRPr sz="4400" kern="1200">
                    <a:solidFill>
                        <a:srgbClr val="%s"/>
                    </a:solidFill>
                    <a:latin typeface="%s"/>
                </a:defRPr>
            </a:lvl1pPr>
        </p:titleStyle>
        <p:bodyStyle>
            <a:lvl1pPr>
                <a:defRPr sz="2800">
                    <a:solidFill>
                        <a:srgbClr val="%s"/>
                    </a:solidFill>
                    <a:latin typeface="%s"/>
                </a:defRPr>
            </a:lvl1pPr>
        </p:bodyStyle>
        <p:otherStyle>
            <a:lvl1pPr>
                <a:defRPr>
                    <a:solidFill>
                        <a:srgbClr val="%s"/>
                    </a:solidFill>
                    <a:latin typeface="%s"/>
                </a:defRPr>
            </a:lvl1pPr>
        </p:otherStyle>
    </p:txStyles>
</p:sldMaster>`,
		t.Colors.Background,
		t.Colors.TextPrimary,
		t.Fonts.TitleFont,
		t.Colors.TextPrimary,
		t.Fonts.BodyFont,
		t.Colors.TextSecondary,
		t.Fonts.BodyFont,
	)
}

// themeXML renders the theme part. The color scheme maps the template's
// background and text colors onto the light/dark slots; accents 4 through 6
// and the hyperlink colors stay fixed.
func (t Template) themeXML() string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<a:theme xmlns:a="http://schemas.openxmlformats.org/drawingml/2006/main" name="Custom Theme">
    <a:themeElements>
        <a:clrScheme name="Custom">
            <a:dk1>
                <a:srgbClr val="%s"/>
            </a:dk1>
            <a:lt1>
                <a:srgbClr val="%s"/>
            </a:lt1>
            <a:dk2>
                <a:srgbClr val="%s"/>
            </a:dk2>
            <a:lt2>
                <a:srgbClr val="EEECE1"/>
            </a:lt2>
            <a:accent1>
                <a:srgbClr val="%s"/>
            </a:accent1>
            <a:accent2>
                <a:srgbClr val="%s"/>
            </a:accent2>
            <a:accent3>
                <a:srgbClr val="%s"/>
            </a:accent3>
            <a:accent4>
                <a:srgbClr val="8064A2"/>
            </a:accent4>
            <a:accent5>
                <a:srgbClr val="4BACC6"/>
            </a:accent5>
            <a:accent6>
                <a:srgbClr val="F39646"/>
            </a:accent6>
            <a:hlink>
                <a:srgbClr val="0000FF"/>
            </a:hlink>
            <a:folHlink>
                <a:srgbClr val="800080"/>
            </a:folHlink>
        </a:clrScheme>
        <a:fontScheme name="Custom">
            <a:majorFont>
                <a:latin typeface="%s"/>
                <a:ea typeface=""/>
                <a:cs typeface=""/>
            </a:majorFont>
            <a:minorFont>
                <a:latin typeface="%s"/>
                <a:ea typeface=""/>
                <a:cs typeface=""/>
            </a:minorFont>
        </a:fontScheme>
        <a:fmtScheme name="Office">
            <a:fillStyleLst>
                <a:solidFill>
                    <a:schemeClr val="phClr"/>
                </a:solidFill>
                <a:gradFill rotWithShape="1">
                    <a:gsLst>
                        <a:gs pos="0">
                            <a:schemeClr val="phClr">
                                <a:tint val="50000"/>
                                <a:satMod val="300000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="35000">
                            <a:schemeClr val="phClr">
                                <a:tint val="37000"/>
                                <a:satMod val="300000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="100000">
                            <a:schemeClr val="phClr">
                                <a:tint val="15000"/>
                                <a:satMod val="350000"/>
                            </a:schemeClr>
                        </a:gs>
                    </a:gsLst>
                    <a:lin ang="16200000" scaled="1"/>
                </a:gradFill>
                <a:gradFill rotWithShape="1">
                    <a:gsLst>
                        <a:gs pos="0">
                            <a:schemeClr val="phClr">
                                <a:shade val="51000"/>
                                <a:satMod val="130000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="80000">
                            <a:schemeClr val="phClr">
                                <a:shade val="93000"/>
                                <a:satMod val="130000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="100000">
                            <a:schemeClr val="phClr">
                                <a:shade val="94000"/>
                                <a:satMod val="135000"/>
                            </a:schemeClr>
                        </a:gs>
                    </a:gsLst>
                    <a:lin ang="16200000" scaled="0"/>
                </a:gradFill>
            </a:fillStyleLst>
            <a:lnStyleLst>
                <a:ln w="9525" cap="flat" cmpd="sng" algn="ctr">
                    <a:solidFill>
                        <a:schemeClr val="phClr">
                            <a:shade val="95000"/>
                            <a:satMod val="105000"/>
                        </a:schemeClr>
                    </a:solidFill>
                    <a:prstDash val="solid"/>
                </a:ln>
                <a:ln w="25400" cap="flat" cmpd="sng" algn="ctr">
                    <a:solidFill>
                        <a:schemeClr val="phClr"/>
                    </a:solidFill>
                    <a:prstDash val="solid"/>
                </a:ln>
                <a:ln w="38100" cap="flat" cmpd="sng" algn="ctr">
                    <a:solidFill>
                        <a:schemeClr val="phClr"/>
                    </a:solidFill>
                    <a:prstDash val="solid"/>
                </a:ln>
            </a:lnStyleLst>
            <a:effectStyleLst>
                <a:effectStyle>
                    <a:effectLst>
                        <a:outerShdw blurRad="40000" dist="20000" dir="5400000" rotWithShape="0">
                            <a:srgbClr val="000000">
                                <a:alpha val="38000"/>
                            </a:srgbClr>
                        </a:outerShdw>
                    </a:effectLst>
                </a:effectStyle>
                <a:effectStyle>
                    <a:effectLst>
                        <a:outerShdw blurRad="40000" dist="23000" dir="5400000" rotWithShape="0">
                            <a:srgbClr val="000000">
                                <a:alpha val="35000"/>
                            </a:srgbClr>
                        </a:outerShdw>
                    </a:effectLst>
                </a:effectStyle>
                <a:effectStyle>
                    <a:effectLst>
                        <a:outerShdw blurRad="40000" dist="23000" dir="5400000" rotWithShape="0">
                            <a:srgbClr val="000000">
                                <a:alpha val="35000"/>
                            </a:srgbClr>
                        </a:outerShdw>
                    </a:effectLst>
                </a:effectStyle>
            </a:effectStyleLst>
            <a:bgFillStyleLst>
                <a:solidFill>
                    <a:schemeClr val="phClr"/>
                </a:solidFill>
                <a:gradFill rotWithShape="1">
                    <a:gsLst>
                        <a:gs pos="0">
                            <a:schemeClr val="phClr">
                                <a:tint val="40000"/>
                                <a:satMod val="350000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="40000">
                            <a:schemeClr val="phClr">
                                <a:tint val="45000"/>
                                <a:shade val="99000"/>
                                <a:satMod val="350000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="100000">
                            <a:schemeClr val="phClr">
                                <a:shade val="20000"/>
                                <a:satMod val="255000"/>
                            </a:schemeClr>
                        </a:gs>
                    </a:gsLst>
                    <a:path path="circle">
                        <a:fillToRect l="50000" t="-80000" r="50000" b="180000"/>
                    </a:path>
                </a:gradFill>
                <a:gradFill rotWithShape="1">
                    <a:gsLst>
                        <a:gs pos="0">
                            <a:schemeClr val="phClr">
                                <a:tint val="80000"/>
                                <a:satMod val="300000"/>
                            </a:schemeClr>
                        </a:gs>
                        <a:gs pos="100000">
                            <a:schemeClr val="phClr">
                                <a:shade val="30000"/>
                                <a:satMod val="200000"/>
                            </a:schemeClr>
                        </a:gs>
                    </a:gsLst>
                    <a:path path="circle">
                        <a:fillToRect l="50000" t="50000" r="50000" b="50000"/>
                    </a:path>
                </a:gradFill>
            </a:bgFillStyleLst>
        </a:fmtScheme>
    </a:themeElements>
    <a:objectDefaults/>
    <a:extraClrSchemeLst/>
</a:theme>`,
		t.Colors.TextPrimary,
		t.Colors.Background,
		t.Colors.TextSecondary,
		t.Colors.Accent1,
		t.Colors.Accent2,
		t.Colors.Accent3,
		t.Fonts.TitleFont,
		t.Fonts.BodyFont,
	)
}
