package consolidate_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/nativeimage/internal/core/domain"
	"go.trai.ch/nativeimage/internal/engine/consolidate"
)

func TestArgs_ZeroMatches(t *testing.T) {
	args := []string{"-server", "-Xss10m"}

	out, res, err := consolidate.Args(args, "-Xmx", consolidate.MaxSize(domain.GiB(1)))

	require.NoError(t, err)
	assert.Equal(t, args, out)
	assert.Equal(t, domain.GiB(1), res.Value, "zero matches should return the seed")
	assert.False(t, res.Found())
}

func TestArgs_ZeroMatchesWithoutSeed(t *testing.T) {
	_, res, err := consolidate.Args([]string{"-server"}, domain.OptionName, consolidate.LastWins())

	require.NoError(t, err)
	assert.Empty(t, res.Value)
}

func TestArgs_OneMatch(t *testing.T) {
	args := []string{"-Xmx3g", "-server"}

	out, res, err := consolidate.Args(args, "-Xmx", consolidate.MaxSize(0))

	require.NoError(t, err)
	assert.Equal(t, []string{"-Xmx3g", "-server"}, out, "a single match must not be rewritten")
	assert.Equal(t, domain.GiB(3), res.Value)
	assert.Equal(t, 1, res.Matches)
}

func TestArgs_ManyMatches(t *testing.T) {
	tests := []struct {
		name   string
		args   []string
		prefix string
		want   []string
		run    func(args []string, prefix string) ([]string, error)
	}{
		{
			name:   "max size",
			args:   []string{"-Xmx2g", "-server", "-Xmx4g", "-Xmx512m"},
			prefix: "-Xmx",
			want:   []string{"-server", "-Xmx4g"},
			run: func(args []string, prefix string) ([]string, error) {
				out, _, err := consolidate.Args(args, prefix, consolidate.MaxSize(0))
				return out, err
			},
		},
		{
			name:   "min size",
			args:   []string{"-Xms2g", "-Xms512m"},
			prefix: "-Xms",
			want:   []string{"-Xms512m"},
			run: func(args []string, prefix string) ([]string, error) {
				out, _, err := consolidate.Args(args, prefix, consolidate.MinSize(domain.GiB(8)))
				return out, err
			},
		},
		{
			name:   "sum",
			args:   []string{"-H:MaxRuntimeCompileMethods=10", "-H:Name=x", "-H:MaxRuntimeCompileMethods=32"},
			prefix: domain.OptionMaxRuntimeCompileMethods,
			want:   []string{"-H:Name=x", "-H:MaxRuntimeCompileMethods=42"},
			run: func(args []string, prefix string) ([]string, error) {
				out, _, err := consolidate.Args(args, prefix, consolidate.Sum())
				return out, err
			},
		},
		{
			name:   "last wins",
			args:   []string{"-H:Name=a", "-H:Path=/tmp", "-H:Name=b"},
			prefix: domain.OptionName,
			want:   []string{"-H:Path=/tmp", "-H:Name=b"},
			run: func(args []string, prefix string) ([]string, error) {
				out, _, err := consolidate.Args(args, prefix, consolidate.LastWins())
				return out, err
			},
		},
		{
			name:   "list union",
			args:   []string{"-H:Features=a,b", "-H:Features=b,c", "-H:Features=a"},
			prefix: domain.OptionFeatures,
			want:   []string{"-H:Features=a,b,c"},
			run: func(args []string, prefix string) ([]string, error) {
				out, _, err := consolidate.Args(args, prefix, consolidate.ListUnion(",", nil))
				return out, err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := tt.run(tt.args, tt.prefix)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)

			matching := 0
			for _, arg := range out {
				if strings.HasPrefix(arg, tt.prefix) {
					matching++
				}
			}
			assert.Equal(t, 1, matching, "exactly one entry with the prefix must remain")
		})
	}
}

func TestArgs_MalformedSuffixFailsFast(t *testing.T) {
	_, _, err := consolidate.Args([]string{"-Xmx2g", "-Xmx2q"}, "-Xmx", consolidate.MaxSize(0))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid size value")
}

func TestArgs_MalformedNumber(t *testing.T) {
	_, _, err := consolidate.Args([]string{"-H:MaxRuntimeCompileMethods=ten"}, domain.OptionMaxRuntimeCompileMethods, consolidate.Sum())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid numeric value")
}

func TestSet_MemoryExample(t *testing.T) {
	set := domain.NewOrderedSet("-Xmx2g", "-Xmx4g", "-Xms1g")

	_, err := consolidate.Set(set, "-Xmx", consolidate.MaxSize(0))
	require.NoError(t, err)
	_, err = consolidate.Set(set, "-Xms", consolidate.MaxSize(domain.GiB(1)))
	require.NoError(t, err)

	assert.ElementsMatch(t, []string{"-Xmx4g", "-Xms1g"}, set.Items())
}

func TestSet_ListUnionIdempotent(t *testing.T) {
	set := domain.NewOrderedSet("-H:Features=a,b", "-H:Features=c,a")
	policy := consolidate.ListUnion(",", nil)

	_, err := consolidate.Set(set, domain.OptionFeatures, policy)
	require.NoError(t, err)
	first := set.Items()

	_, err = consolidate.Set(set, domain.OptionFeatures, policy)
	require.NoError(t, err)

	assert.Equal(t, []string{"-H:Features=a,b,c"}, first)
	assert.Equal(t, first, set.Items())
}

func TestClampMinToMax(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        []string
		wantChanged bool
	}{
		{
			name:        "min above max is lowered",
			args:        []string{"-Xms8g", "-Xmx2g"},
			want:        []string{"-Xmx2g", "-Xms2g"},
			wantChanged: true,
		},
		{
			name: "min below max is kept",
			args: []string{"-Xms1g", "-Xmx2g"},
			want: []string{"-Xms1g", "-Xmx2g"},
		},
		{
			name: "equal sizes are kept",
			args: []string{"-Xms1024m", "-Xmx1g"},
			want: []string{"-Xms1024m", "-Xmx1g"},
		},
		{
			name: "no max leaves min alone",
			args: []string{"-Xms8g"},
			want: []string{"-Xms8g"},
		},
		{
			name:        "last occurrences are compared",
			args:        []string{"-Xmx8g", "-Xms1g", "-Xmx1g", "-Xms4g"},
			want:        []string{"-Xmx1g", "-Xms1g"},
			wantChanged: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			set := domain.NewOrderedSet(tt.args...)

			changed, err := consolidate.ClampMinToMax(set, "-Xms", "-Xmx")

			require.NoError(t, err)
			assert.Equal(t, tt.wantChanged, changed)
			assert.Equal(t, tt.want, set.Items())
		})
	}
}

func TestMapList(t *testing.T) {
	set := domain.NewOrderedSet("-H:SubstitutionFiles=a.json,b.json", "-H:Name=x")

	err := consolidate.MapList(set, "-H:SubstitutionFiles=", ",", func(s string) (string, error) {
		return "/work/" + s, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"-H:SubstitutionFiles=/work/a.json,/work/b.json", "-H:Name=x"}, set.Items())
}

func TestMapList_Error(t *testing.T) {
	set := domain.NewOrderedSet("-H:SubstitutionFiles=missing.json")
	boom := errors.New("boom")

	err := consolidate.MapList(set, "-H:SubstitutionFiles=", ",", func(string) (string, error) {
		return "", boom
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")
	assert.Equal(t, []string{"-H:SubstitutionFiles=missing.json"}, set.Items())
}

func TestReplace(t *testing.T) {
	set := domain.NewOrderedSet("-H:Name=a", "-H:Path=/x", "-H:Name=b")

	consolidate.Replace(set, domain.OptionName, "polyglot")

	assert.Equal(t, []string{"-H:Path=/x", "-H:Name=polyglot"}, set.Items())
}
