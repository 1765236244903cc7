package drawer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ridoystarlord/erd/schema"
)

func TestPlainText(t *testing.T) {
	want := `=== Tables ===
[users]
id: int
name: text


[orders]
id: int
user_id: int


=== Relations ===
orders:user_id -> orders:user_id

=== Done ===
`
	assert.Equal(t, want, render(t, PlainText{}, shopSchema()))
}

func TestPlainTextEmpty(t *testing.T) {
	assert.Equal(t, "=== Tables ===\n=== Relations ===\n=== Done ===\n", render(t, PlainText{}, &schema.Schema{}))
}

func TestPlainTextTableWithoutFields(t *testing.T) {
	s := &schema.Schema{Tables: []schema.Table{{Name: "empty"}}}

	assert.Equal(t, "=== Tables ===\n[empty]\n\n\n=== Relations ===\n=== Done ===\n", render(t, PlainText{}, s))
}
