package sentiment

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_CleanText(t *testing.T) {
	tt := []struct {
		name string
		in   string
		out  string
	}{
		{
			name: "urls mentions and hashtags",
			in:   "Check this out! https://x.co/abc @user #great",
			out:  "check this out great",
		},
		{
			name: "www url",
			in:   "visit www.example.com now",
			out:  "visit now",
		},
		{
			name: "punctuation and whitespace",
			in:   "  So...   GOOD!!! right?  ",
			out:  "so good right",
		},
		{
			name: "hashtag text is kept",
			in:   "#golang is #1",
			out:  "golang is 1",
		},
		{
			name: "empty",
			in:   "",
			out:  "",
		},
		{
			name: "only noise",
			in:   "@someone https://t.co/xyz !!!",
			out:  "",
		},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.out, CleanText(tc.in))
		})
	}
}

func Test_CleanText_idempotent(t *testing.T) {
	for _, in := range []string{
		"Check this out! https://x.co/abc @user #great",
		"plain text",
		"MiXeD CaSe #Tags @and http://urls.example",
		"",
	} {
		once := CleanText(in)
		assert.Equal(t, once, CleanText(once))
	}
}
