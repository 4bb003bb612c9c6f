package storage

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderPages(t *testing.T, pages int) []byte {
	t.Helper()
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.SetFont("Arial", "", 12)
	for i := 0; i < pages; i++ {
		doc.AddPage()
		doc.Cell(40, 10, "page")
	}
	buf := &bytes.Buffer{}
	require.NoError(t, doc.Output(buf))
	return buf.Bytes()
}

func TestPageCount(t *testing.T) {
	content := renderPages(t, 3)
	require.True(t, HasPDFHeader(content))

	count, err := PageCount(content)
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestPageCountToleratesTrailingGarbage(t *testing.T) {
	content := append(renderPages(t, 1), []byte("\ngarbage after eof")...)

	count, err := PageCount(content)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPageCountRejectsNonPDF(t *testing.T) {
	_, err := PageCount([]byte("PK\x03\x04 not a pdf"))
	require.Error(t, err)
}

// assemblePDF writes objects with a correct classic xref table so the reader
// gets past the trailer and into object parsing.
func assemblePDF(objects ...string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objects))
	for i, obj := range objects {
		offsets[i] = buf.Len()
		fmt.Fprintf(buf, "%d 0 obj\n%s\nendobj\n", i+1, obj)
	}
	xref := buf.Len()
	fmt.Fprintf(buf, "xref\n0 %d\n0000000000 65535 f \n", len(objects)+1)
	for _, off := range offsets {
		fmt.Fprintf(buf, "%010d 00000 n \n", off)
	}
	fmt.Fprintf(buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objects)+1, xref)
	return buf.Bytes()
}

func TestPageCountReadsAssembledDocument(t *testing.T) {
	content := assemblePDF(
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 4 >>",
	)

	count, err := PageCount(content)
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestPageCountReportsMalformedDictionary(t *testing.T) {
	content := assemblePDF(
		"<< /Type /Catalog 5Pages 2 0 R >>",
		"<< /Type /Pages /Kids [] /Count 1 >>",
	)

	var (
		count int
		err   error
	)
	require.NotPanics(t, func() { count, err = PageCount(content) })
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-name key")
	assert.Zero(t, count)
}
