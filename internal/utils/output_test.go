package utils

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-config/models"
)

func TestWriteOutput(t *testing.T) {
	values := models.MapOf(
		"title", "Mine",
		"nested", models.MapOf("z", 1, "a", true),
		"kind", models.Symbol("html"),
		"released", models.NewDate(2024, time.March, 1),
	)

	tests := []struct {
		name   string
		data   any
		format string
		want   string
	}{
		{
			name:   "yaml keeps key order",
			data:   values,
			format: "yaml",
			want:   "title: Mine\nnested:\n  z: 1\n  a: true\nkind: !symbol html\nreleased: 2024-03-01\n",
		},
		{
			name:   "empty format means yaml",
			data:   models.MapOf("a", 1),
			format: "",
			want:   "a: 1\n",
		},
		{
			name:   "json keeps key order",
			data:   values,
			format: "JSON",
			want:   "{\n  \"title\": \"Mine\",\n  \"nested\": {\n    \"z\": 1,\n    \"a\": true\n  },\n  \"kind\": \"html\",\n  \"released\": \"2024-03-01\"\n}\n",
		},
		{
			name:   "chain as yaml",
			data:   models.ChainResponse{SiteDir: "/srv/site", Chain: []string{"/srv/site/nanoc.yaml"}},
			format: "yaml",
			want:   "site_dir: /srv/site\nchain:\n  - /srv/site/nanoc.yaml\n",
		},
		{
			name:   "site root as json",
			data:   models.SiteRootResponse{SiteDir: "/srv/site", IsSiteRoot: true},
			format: "json",
			want:   "{\n  \"site_dir\": \"/srv/site\",\n  \"is_site_root\": true\n}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, WriteOutput(&buf, tt.data, tt.format))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestWriteOutput_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer

	err := WriteOutput(&buf, models.MapOf("a", 1), "toml")

	require.Error(t, err)
	assert.Empty(t, buf.String())
}
