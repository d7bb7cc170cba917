package csvtable

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/domonda/go-tableview"
)

type upperEncoder struct{}

func (upperEncoder) Encode(utf8 []byte) ([]byte, error) { return bytes.ToUpper(utf8), nil }

func TestWriter_WriteView(t *testing.T) {
	view := &tableview.StringsView{
		Cols: []string{"Name", "Note"},
		Rows: [][]string{
			{"Alice", "says \"hi\""},
			{"Bob", "a;b"},
			{"Carol", ""},
			{"Dave"},
		},
	}
	tests := []struct {
		name   string
		writer *Writer
		header bool
		want   string
	}{
		{
			name:   "defaults",
			writer: NewWriter(),
			header: true,
			want:   "Name,Note\r\nAlice,\"says \"\"hi\"\"\"\r\nBob,a;b\r\nCarol,\r\nDave,\r\n",
		},
		{
			name:   "semicolon with missing value",
			writer: NewWriter().WithDelimiter(';').WithNewLine("\n").WithMissingValue("-"),
			want:   "Alice;\"says \"\"hi\"\"\"\nBob;\"a;b\"\nCarol;\nDave;-\n",
		},
		{
			name:   "quote empty fields",
			writer: NewWriter().WithNewLine("\n").WithQuoteEmptyFields(true).WithEscapeQuotes(`\"`),
			want:   "Alice,\"says \\\"hi\\\"\"\nBob,a;b\nCarol,\"\"\nDave,\"\"\n",
		},
		{
			name:   "quote all and encode",
			writer: NewWriter().WithNewLine("\n").WithQuoteAllFields(true).WithEncoder(upperEncoder{}),
			header: true,
			want:   "\"NAME\",\"NOTE\"\n\"ALICE\",\"SAYS \"\"HI\"\"\"\n\"BOB\",\"A;B\"\n\"CAROL\",\"\"\n\"DAVE\",\"\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf strings.Builder
			err := tt.writer.WriteView(context.Background(), &buf, view, tt.header)
			require.NoError(t, err)
			require.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriter_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	source := &tableview.StringsView{Cols: []string{"A", "B"}, Rows: [][]string{{"x\ny", "1"}, {"z"}}}
	require.NoError(t, NewWriter().WriteView(context.Background(), &buf, source, true))

	parsed, _, err := Parse(buf.Bytes(), nil)
	require.NoError(t, err)
	require.Equal(t, source.Cols, parsed.Cols)
	require.Equal(t, source.Rows, parsed.Rows)
}

func TestWriter_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewWriter().WriteView(ctx, new(bytes.Buffer), &tableview.StringsView{Cols: []string{"A"}}, true)
	require.ErrorIs(t, err, context.Canceled)
}
