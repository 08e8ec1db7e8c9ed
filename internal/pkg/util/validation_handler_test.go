package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Text     string `validate:"required"`
	Platform string `validate:"required,max=8"`
}

func TestValidateDTO(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		in      *sample
		wantErr string
	}{
		{name: "ok", in: &sample{Text: "a", Platform: "X"}},
		{name: "missing text", in: &sample{Platform: "X"}, wantErr: "字段 [Text] 校验失败，规则 [required]"},
		{name: "platform too long", in: &sample{Text: "a", Platform: "Instagram!"}, wantErr: "字段 [Platform] 校验失败，规则 [max]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			err := ValidateDTO(tt.in)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tt.wantErr)
		})
	}
}
