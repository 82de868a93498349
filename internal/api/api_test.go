package api

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/starford/sowilo/internal/pptx"
)

// testEnv builds a router with one custom template registered.
// authToken="" means disabled mode; non-empty enables token mode.
func testEnv(t *testing.T, authToken string) http.Handler {
	t.Helper()
	corporate := pptx.TemplateByName(pptx.TemplateDefault)
	corporate.Name = "corporate"
	resolver := pptx.NewResolver(corporate)
	return NewRouter(resolver, pptx.TemplateDefault, authToken != "", authToken)
}

func postMarkdown(t *testing.T, router http.Handler, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "text/markdown")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// deckPart extracts a named part from a deck returned in a response body.
func deckPart(t *testing.T, deck []byte, name string) string {
	t.Helper()
	r, err := zip.NewReader(bytes.NewReader(deck), int64(len(deck)))
	if err != nil {
		t.Fatalf("response is not a zip: %v", err)
	}
	for _, f := range r.File {
		if f.Name != name {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			t.Fatal(err)
		}
		defer rc.Close()
		data, err := io.ReadAll(rc)
		if err != nil {
			t.Fatal(err)
		}
		return string(data)
	}
	t.Fatalf("part %s not found in deck", name)
	return ""
}

func TestConvert_ReturnsDeck(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/convert", "# Launch Plan\n\nShip in June.\n")
	if w.Code != http.StatusOK {
		t.Fatalf("convert status = %d, body = %s", w.Code, w.Body.String())
	}
	if ct := w.Header().Get("Content-Type"); ct != pptxContentType {
		t.Errorf("Content-Type = %q", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="presentation.pptx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}

	slide := deckPart(t, w.Body.Bytes(), "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "<a:t>Launch Plan</a:t>") {
		t.Errorf("slide1 missing title, got %q", slide)
	}
}

func TestConvert_TemplateQuery(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/convert?template=modern", "# Styled\n\nContent.\n")
	if w.Code != http.StatusOK {
		t.Fatalf("convert status = %d", w.Code)
	}
	theme := deckPart(t, w.Body.Bytes(), "ppt/theme/theme1.xml")
	if !strings.Contains(theme, `typeface="Roboto"`) {
		t.Errorf("theme should carry the modern template font")
	}
}

func TestConvert_CustomTemplateResolves(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/convert?template=corporate", "# Custom\n\nContent.\n")
	if w.Code != http.StatusOK {
		t.Fatalf("convert with custom template = %d, body = %s", w.Code, w.Body.String())
	}
}

func TestConvert_FilenameQuery(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/convert?filename=board-deck", "# Board\n\nNumbers.\n")
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="board-deck.pptx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
}

func TestConvert_EmptyBody(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/convert", "   \n")
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty body status = %d, want 400", w.Code)
	}
}

func TestOutline_ReturnsSlidePreview(t *testing.T) {
	router := testEnv(t, "")

	src := "# First\n\nIntro text.\n\n# Second\n\n```go\ncode\n```\n"
	w := postMarkdown(t, router, "/outline", src)
	if w.Code != http.StatusOK {
		t.Fatalf("outline status = %d, body = %s", w.Code, w.Body.String())
	}

	var resp OutlineResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode outline: %v", err)
	}
	if resp.SlideCount != 2 || len(resp.Slides) != 2 {
		t.Fatalf("slide count = %d, slides = %d, want 2", resp.SlideCount, len(resp.Slides))
	}
	if resp.Slides[0].Title != "First" {
		t.Errorf("slide 0 title = %q", resp.Slides[0].Title)
	}
	if got := resp.Slides[1].Elements; len(got) != 1 || got[0] != "code" {
		t.Errorf("slide 1 elements = %v, want [code]", got)
	}
}

func TestOutline_EmptyBody(t *testing.T) {
	router := testEnv(t, "")

	w := postMarkdown(t, router, "/outline", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("empty outline status = %d, want 400", w.Code)
	}
}

func TestListTemplates(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("templates status = %d", w.Code)
	}

	var resp TemplateListResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	if resp.Default != "default" {
		t.Errorf("default = %q", resp.Default)
	}
	want := map[string]bool{"default": false, "professional": false, "modern": false, "minimal": false, "corporate": false}
	for _, name := range resp.Templates {
		want[name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("template %q missing from list %v", name, resp.Templates)
		}
	}
}

// uploadMarkdown posts a multipart form with a single file field.
func uploadMarkdown(t *testing.T, router http.Handler, filename string, content []byte) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	_, _ = io.Copy(part, bytes.NewReader(content))
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/convert/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestConvertUpload(t *testing.T) {
	router := testEnv(t, "")

	w := uploadMarkdown(t, router, "talk.md", []byte("# Talk\n\nSlides.\n"))
	if w.Code != http.StatusOK {
		t.Fatalf("upload status = %d, body = %s", w.Code, w.Body.String())
	}
	if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="talk.pptx"` {
		t.Errorf("Content-Disposition = %q", cd)
	}
	slide := deckPart(t, w.Body.Bytes(), "ppt/slides/slide1.xml")
	if !strings.Contains(slide, "<a:t>Talk</a:t>") {
		t.Errorf("slide1 missing uploaded title")
	}
}

func TestConvertUpload_WrongExtension(t *testing.T) {
	router := testEnv(t, "")

	w := uploadMarkdown(t, router, "talk.txt", []byte("# Talk\n"))
	if w.Code != http.StatusBadRequest {
		t.Errorf("wrong extension status = %d, want 400", w.Code)
	}
}

func TestConvertUpload_MissingFileField(t *testing.T) {
	router := testEnv(t, "")

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	_ = mw.WriteField("wrong", "data")
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/convert/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Errorf("missing field = %d, want 400", w.Code)
	}
}

func TestAuth_TokenRequired(t *testing.T) {
	router := testEnv(t, "sekrit")

	// No token → 401.
	w := postMarkdown(t, router, "/convert", "# Locked\n\nBody.\n")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("no token status = %d, want 401", w.Code)
	}

	// Wrong token → 401.
	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("wrong token status = %d, want 401", w.Code)
	}

	// Correct token → 200.
	req = httptest.NewRequest(http.MethodGet, "/templates", nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("valid token status = %d, want 200", w.Code)
	}
}

func TestAuth_DisabledAllowsAnonymous(t *testing.T) {
	router := testEnv(t, "")

	req := httptest.NewRequest(http.MethodGet, "/templates", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Errorf("disabled auth status = %d, want 200", w.Code)
	}
}
