package resume

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vignesh-cloud-prog/agentic-workflows/internal/types"
)

// writeMinimalPDF builds a small uncompressed PDF with one text page per entry
// of pageTexts, computing the xref offsets as it goes.
func writeMinimalPDF(t *testing.T, path string, pageTexts []string) {
	t.Helper()

	type object struct {
		num  int
		body string
	}

	var objects []object

	pageCount := len(pageTexts)
	// Object numbering: 1 catalog, 2 pages, then per page: page object and
	// content stream, finally the shared font object.
	fontNum := 3 + 2*pageCount

	kids := make([]string, 0, pageCount)
	for i := 0; i < pageCount; i++ {
		kids = append(kids, fmt.Sprintf("%d 0 R", 3+2*i))
	}

	objects = append(objects,
		object{1, "<< /Type /Catalog /Pages 2 0 R >>"},
		object{2, fmt.Sprintf("<< /Type /Pages /Kids [%s] /Count %d >>", strings.Join(kids, " "), pageCount)},
	)

	for i, text := range pageTexts {
		pageNum := 3 + 2*i
		contentNum := pageNum + 1
		content := fmt.Sprintf("BT /F1 12 Tf 72 720 Td (%s) Tj ET", text)
		objects = append(objects,
			object{pageNum, fmt.Sprintf("<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Contents %d 0 R /Resources << /Font << /F1 %d 0 R >> >> >>", contentNum, fontNum)},
			object{contentNum, fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(content), content)},
		)
	}

	objects = append(objects, object{fontNum, "<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>"})

	var sb strings.Builder
	sb.WriteString("%PDF-1.4\n")

	offsets := make(map[int]int)
	for _, obj := range objects {
		offsets[obj.num] = sb.Len()
		sb.WriteString(fmt.Sprintf("%d 0 obj\n%s\nendobj\n", obj.num, obj.body))
	}

	xrefOffset := sb.Len()
	sb.WriteString(fmt.Sprintf("xref\n0 %d\n", len(objects)+1))
	sb.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objects); i++ {
		sb.WriteString(fmt.Sprintf("%010d 00000 n \n", offsets[i]))
	}
	sb.WriteString(fmt.Sprintf("trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xrefOffset))

	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0644))
}

func TestExtract_FileNotFound(t *testing.T) {
	doc := Extract(filepath.Join(t.TempDir(), "missing.pdf"))

	require.NotNil(t, doc)
	assert.Equal(t, types.StatusNotFound, doc.Status)
	assert.Empty(t, doc.RawText)
	assert.False(t, doc.Parsed())
}

func TestExtract_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("this is plain text, not a PDF"), 0644))

	doc := Extract(path)

	assert.Equal(t, types.StatusExtractionFailed, doc.Status)
	assert.Empty(t, doc.RawText)
}

func TestExtract_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.pdf")
	require.NoError(t, os.WriteFile(path, nil, 0644))

	doc := Extract(path)

	assert.Equal(t, types.StatusExtractionFailed, doc.Status)
	assert.Empty(t, doc.RawText)
}

func TestExtract_NoTextLayer(t *testing.T) {
	// A structurally valid PDF whose pages carry no usable text, like a
	// scanned document: both backends open it but yield only whitespace.
	path := filepath.Join(t.TempDir(), "scanned.pdf")
	writeMinimalPDF(t, path, []string{" ", " "})

	doc := Extract(path)

	assert.Equal(t, types.StatusExtractionFailed, doc.Status)
	assert.Empty(t, doc.RawText)
}

func TestExtract_SinglePage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	writeMinimalPDF(t, path, []string{"Senior engineer with ten years of Go experience"})

	doc := Extract(path)

	require.Equal(t, types.StatusParsed, doc.Status)
	assert.Contains(t, doc.RawText, "Senior engineer with ten years of Go experience")
	assert.True(t, doc.Parsed())
}

func TestExtract_MultiPageOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	writeMinimalPDF(t, path, []string{"First page text", "Second page text"})

	doc := Extract(path)

	require.Equal(t, types.StatusParsed, doc.Status)
	first := strings.Index(doc.RawText, "First page text")
	second := strings.Index(doc.RawText, "Second page text")
	require.GreaterOrEqual(t, first, 0)
	require.Greater(t, second, first, "pages should be concatenated in page order")
}
