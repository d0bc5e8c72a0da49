package accelerator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// TestSuffix formats major/minor pairs from realistic version strings.
func TestSuffix(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   Versions
		want string
	}{
		{Versions{Framework: "2.3", CUDA: "12.1"}, ".cu121.torch23"},
		{Versions{Framework: "2.3.0+cu121", CUDA: "12.1"}, ".cu121.torch23"},
		{Versions{Framework: "2.1.0a0+32f93b1", CUDA: "12.2"}, ".cu122.torch21"},
		{Versions{Framework: "1.13.1", CUDA: "11.7"}, ".cu117.torch113"},
		{Versions{Framework: "2.4.0", CUDA: "12"}, ".cu120.torch24"},
		{Versions{Framework: "2.5.0.dev20240801+cu121", CUDA: "12.1"}, ".cu121.torch25"},
		{Versions{Framework: "2.1.0.post1", CUDA: "11.8"}, ".cu118.torch21"},
		{Versions{Framework: "2.2.0rc3", CUDA: "12.1"}, ".cu121.torch22"},
		{Versions{Framework: "2.4.0a0+3bcc3cd.nv24.07", CUDA: "12.5"}, ".cu125.torch24"},
		{Versions{Framework: "1!2.6.0.post2.dev5", CUDA: "12.4.1"}, ".cu124.torch26"},
		{Versions{Framework: "v2.0.1-1", CUDA: "11.7"}, ".cu117.torch20"},
	}
	for _, tc := range cases {
		got, err := Suffix(tc.in)
		require.NoError(t, err, tc.in)
		require.Equal(t, tc.want, got, tc.in)
	}
}

// TestSuffix_Invalid rejects empty and unparsable versions.
func TestSuffix_Invalid(t *testing.T) {
	t.Parallel()

	for _, in := range []Versions{
		{Framework: "2.3.0", CUDA: ""},
		{Framework: "", CUDA: "12.1"},
		{Framework: "torch", CUDA: "12.1"},
		{Framework: "2.3.0", CUDA: "None"},
		{Framework: "2.3.0garbage", CUDA: "12.1"},
		{Framework: "2.3.0+", CUDA: "12.1"},
	} {
		_, err := Suffix(in)
		require.Error(t, err, in)
	}
}
