package validation

import (
	"bytes"
	"io"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/vendadash/backend/src/logger"
)

func TestMain(m *testing.M) {
	logger.InitLogger("error")
	os.Exit(m.Run())
}

func TestValidateClientContentType(t *testing.T) {
	assert.NoError(t, ValidateClientContentType("text/csv"))
	assert.NoError(t, ValidateClientContentType("Text/CSV"))
	assert.NoError(t, ValidateClientContentType("application/vnd.ms-excel"))
	assert.Error(t, ValidateClientContentType("application/pdf"))
	assert.Error(t, ValidateClientContentType(""))
}

func TestValidateFileContentByMagicBytes(t *testing.T) {
	csv := bytes.NewReader([]byte("Data;Venda\n2024-01-01;10\n"))
	detected, err := ValidateFileContentByMagicBytes(csv)
	require.NoError(t, err)
	assert.Equal(t, "text/plain", detected)

	// Reader is reset so the parser sees the full file afterwards.
	rest, err := io.ReadAll(csv)
	require.NoError(t, err)
	assert.Equal(t, "Data;Venda\n2024-01-01;10\n", string(rest))
}

func TestValidateFileContentByMagicBytesRejectsBinary(t *testing.T) {
	png := bytes.NewReader([]byte("\x89PNG\r\n\x1a\n0000000000"))
	_, err := ValidateFileContentByMagicBytes(png)
	assert.Error(t, err)
}

func TestStripUnprintable(t *testing.T) {
	assert.Equal(t, "Vodacom", StripUnprintable("Voda\x00com"))
	assert.Equal(t, "a\tb", StripUnprintable("a\tb"))
	assert.Equal(t, "Crédito 500", StripUnprintable("Crédito 500"))
}
