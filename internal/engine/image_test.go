package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/conneroisu/prettytext/internal/ruler"
)

func TestParseImageAlt(t *testing.T) {
	tests := []struct {
		name string
		alt  string
		want ImageAlt
	}{
		{
			name: "plain",
			alt:  "photo",
			want: ImageAlt{Alt: "photo"},
		},
		{
			name: "size",
			alt:  "photo|300x200",
			want: ImageAlt{Alt: "photo", Width: 300, Height: 200, HasSize: true},
		},
		{
			name: "percentage",
			alt:  "photo|300x200,50%",
			want: ImageAlt{Alt: "photo", Width: 150, Height: 100, HasSize: true},
		},
		{
			name: "width override",
			alt:  "photo|300x200,150x",
			want: ImageAlt{Alt: "photo", Width: 150, Height: 100, HasSize: true},
		},
		{
			name: "height override",
			alt:  "photo|300x200,x50",
			want: ImageAlt{Alt: "photo", Width: 75, Height: 50, HasSize: true},
		},
		{
			name: "truncates",
			alt:  "p|333x101,33%",
			want: ImageAlt{Alt: "p", Width: 109, Height: 33, HasSize: true},
		},
		{
			name: "media and thumbnail",
			alt:  "clip|video|thumbnail",
			want: ImageAlt{Alt: "clip", Media: "video", Thumbnail: true},
		},
		{
			name: "data attributes",
			alt:  "x|caption=Sunset|Bad Key=1|2x=y",
			want: ImageAlt{Alt: "x", Data: []ruler.Attr{{Name: "data-caption", Value: "Sunset"}}},
		},
		{
			name: "literal segments rejoined",
			alt:  "a|b|100x100|c",
			want: ImageAlt{Alt: "a|b|c", Width: 100, Height: 100, HasSize: true},
		},
		{
			name: "first segment is never a directive",
			alt:  "video|audio",
			want: ImageAlt{Alt: "video", Media: "audio"},
		},
		{
			name: "zero percent is not a size",
			alt:  "a|10x10,0%",
			want: ImageAlt{Alt: "a|10x10,0%"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseImageAlt(tt.alt))
		})
	}
}
