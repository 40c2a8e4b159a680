package gamedata

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcessor(t *testing.T) {
	t.Parallel()

	t.Run("dash input reads stdin and writes stdout", func(t *testing.T) {
		t.Parallel()
		p, err := NewProcessor("-", "", false)
		require.NoError(t, err)
		assert.True(t, p.ReadFromStdin)
		assert.True(t, p.WriteToStdout)
	})

	t.Run("write in place targets the input file", func(t *testing.T) {
		t.Parallel()
		p, err := NewProcessor("looknfeel.xml", "", true)
		require.NoError(t, err)
		assert.False(t, p.WriteToStdout)
		assert.Equal(t, "looknfeel.xml", p.OutputFile)
	})

	t.Run("write in place from stdin is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewProcessor("-", "", true)
		require.Error(t, err)
	})

	t.Run("write in place with output file is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewProcessor("a.xml", "b.xml", true)
		require.Error(t, err)
	})
}

func TestProcessor_ReadInput_Stdin(t *testing.T) {
	t.Parallel()

	p, err := NewProcessor("-", "", false)
	require.NoError(t, err)
	p.Stdin = strings.NewReader("<ItemModifiers/>")

	data, err := p.ReadInput()
	require.NoError(t, err)
	assert.Equal(t, "<ItemModifiers/>", string(data))
}

func TestProcessor_WriteOutput_File(t *testing.T) {
	t.Parallel()

	out := filepath.Join(t.TempDir(), "out.xml")
	p, err := NewProcessor("-", out, false)
	require.NoError(t, err)

	var stderr bytes.Buffer
	p.Stderr = &stderr

	require.NoError(t, p.WriteOutput([]byte("<base/>")))
	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "<base/>", string(data))
	assert.Contains(t, stderr.String(), "Document written to")
}

func TestResolveFamily(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		args       []string
		wantFamily string
		wantFile   string
		wantErr    bool
	}{
		{name: "explicit family", args: []string{"looknfeel", "custom.xml"}, wantFamily: "looknfeel", wantFile: "custom.xml"},
		{name: "detected from file name", args: []string{"ModuleData/item_modifiers.xml"}, wantFamily: "itemmodifiers", wantFile: "ModuleData/item_modifiers.xml"},
		{name: "explicit family with stdin", args: []string{"bannericons", "-"}, wantFamily: "bannericons", wantFile: "-"},
		{name: "unknown family", args: []string{"skills", "skills.xml"}, wantErr: true},
		{name: "undetectable file", args: []string{"custom.xml"}, wantErr: true},
		{name: "stdin without family", args: []string{"-"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			family, file, err := resolveFamily(tt.args)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFamily, family.Name)
			assert.Equal(t, tt.wantFile, file)
		})
	}
}

func TestCompareOptions(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{Use: "test"}
	addCompareFlags(cmd)
	assert.Empty(t, compareOptions(cmd))

	require.NoError(t, cmd.Flags().Set("booleans", "true"))
	require.NoError(t, cmd.Flags().Set("tolerance", "0"))
	require.NoError(t, cmd.Flags().Set("ignore-namespaces", "true"))
	assert.Len(t, compareOptions(cmd), 3, "an explicit zero tolerance is still an option")
}
