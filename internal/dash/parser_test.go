package dash

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// samplePage builds a quoted-printable page capture the way a browser
// saves one: every equals sign encoded as =3D and one URL split across
// lines with a soft break.
func samplePage() string {
	goodTitle := `&lt;span id=3D&quot;4821_description&quot;&gt;Kitchen (2)&lt;/span&gt;` +
		`&lt;span id=3D&quot;4821_DateUploaded&quot;&gt;6/15/2020 3:04:05 PM&lt;/span&gt;`
	secondTitle := `&lt;span id=3D&quot;4822_description&quot;&gt;Bed &amp;amp; Breakfast&lt;/span&gt;` +
		`&lt;span id=3D&quot;4822_DateUploaded&quot;&gt;7/1/2020 11:30:00 AM&lt;/span&gt;`
	noDescTitle := `&lt;span id=3D&quot;4823_DateUploaded&quot;&gt;7/2/2020 9:00:00 AM&lt;/span&gt;`

	return "<html><head>chrome</head><body>\r\n" +
		`<div class=3D"RadAjaxPanel" id=3D"ctl00_DivPhotosPanel" style=3D"display: block;">` + "\r\n" +
		`<a href=3D"https://dash.example.com/pho=` + "\r\n" +
		`tos/full?key=3Dabc&amp;size=3Dlarge" data-title=3D"` + goodTitle + `">` +
		`<img class=3D"album_photo" src=3D"thumb1.jpg"></a>` + "\r\n" +
		`<a href=3D"no scheme here" data-title=3D"` + goodTitle + `">` +
		`<img class=3D"album_photo" src=3D"thumb2.jpg"></a>` + "\r\n" +
		`<a href=3D"https://dash.example.com/photos/full?key=3Ddef" data-title=3D"` + noDescTitle + `">` +
		`<img class=3D"album_photo" src=3D"thumb3.jpg"></a>` + "\r\n" +
		`<a href=3D"https://dash.example.com/photos/full?key=3Dghi" data-title=3D"` + secondTitle + `">` +
		`<img class=3D"album_photo" src=3D"thumb4.jpg"></a>` + "\r\n" +
		`<span id=3D"trailer_DateUploaded">7/1/2020</span></div>` + "\r\n" +
		"</body></html>\r\n"
}

func TestParse(t *testing.T) {
	photos, err := Parse(samplePage())
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	// Four anchors in the panel; the one with a bad URL and the one
	// missing its description span are dropped.
	if len(photos) != 2 {
		t.Fatalf("Parse() returned %d photos, want 2", len(photos))
	}

	first := photos[0]
	if first.SourceURL != "https://dash.example.com/photos/full?key=abc&size=large" {
		t.Errorf("SourceURL = %q", first.SourceURL)
	}
	if first.OriginalDescription != "Kitchen (2)" {
		t.Errorf("OriginalDescription = %q, want %q", first.OriginalDescription, "Kitchen (2)")
	}
	if first.PreferredIndex != 2 {
		t.Errorf("PreferredIndex = %d, want 2", first.PreferredIndex)
	}
	if first.UploadDate != "6/15/2020 3:04:05 PM" {
		t.Errorf("UploadDate = %q", first.UploadDate)
	}

	second := photos[1]
	if second.OriginalDescription != "Bed & Breakfast" {
		t.Errorf("OriginalDescription = %q, want %q", second.OriginalDescription, "Bed & Breakfast")
	}
	if second.SourceURL != "https://dash.example.com/photos/full?key=ghi" {
		t.Errorf("SourceURL = %q", second.SourceURL)
	}
}

func TestParseUnrecognizedLayout(t *testing.T) {
	_, err := Parse("<html><body>not an album page</body></html>")
	if !errors.Is(err, ErrUnrecognizedLayout) {
		t.Errorf("Parse() error = %v, want ErrUnrecognizedLayout", err)
	}
}

func TestProcessFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "album.mhtml")
	if err := os.WriteFile(path, []byte(samplePage()), 0644); err != nil {
		t.Fatal(err)
	}

	photos, err := ProcessFile(path)
	if err != nil {
		t.Fatalf("ProcessFile() error = %v", err)
	}
	if len(photos) != 2 {
		t.Errorf("ProcessFile() returned %d photos, want 2", len(photos))
	}
}

func TestProcessFileMissing(t *testing.T) {
	_, err := ProcessFile(filepath.Join(t.TempDir(), "gone.mhtml"))
	if err == nil {
		t.Error("ProcessFile() should fail for a missing file")
	}
}

func TestAttrValue(t *testing.T) {
	tag := `<a href="https://example.com" data-title="hello">`

	if v, ok := attrValue(tag, "href"); !ok || v != "https://example.com" {
		t.Errorf("attrValue(href) = %q, %v", v, ok)
	}
	if v, ok := attrValue(tag, "data-title"); !ok || v != "hello" {
		t.Errorf("attrValue(data-title) = %q, %v", v, ok)
	}
	if _, ok := attrValue(tag, "id"); ok {
		t.Error("attrValue(id) should report missing")
	}
}

func TestSpanText(t *testing.T) {
	content := `<span id="99_description">Porch</span><span id="99_DateUploaded">1/2/2003</span>`

	if v, ok := spanText(content, "description"); !ok || v != "Porch" {
		t.Errorf("spanText(description) = %q, %v", v, ok)
	}
	if v, ok := spanText(content, "DateUploaded"); !ok || v != "1/2/2003" {
		t.Errorf("spanText(DateUploaded) = %q, %v", v, ok)
	}
	if _, ok := spanText(content, "caption"); ok {
		t.Error("spanText(caption) should report missing")
	}
}
