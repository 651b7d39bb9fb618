package export_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-payment-admin/internal/commons/export"
)

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf,
		[]string{"id", "amount"},
		[][]string{{"1", "100.00"}, {"2", "2,500.00"}},
	)

	assert.NoError(t, err)
	assert.Equal(t, "id,amount\n1,100.00\n2,\"2,500.00\"\n", buf.String())
}

func TestWriteCSV_HeaderOnly(t *testing.T) {
	var buf bytes.Buffer
	err := export.WriteCSV(&buf, []string{"id"}, nil)

	assert.NoError(t, err)
	assert.Equal(t, "id\n", buf.String())
}
