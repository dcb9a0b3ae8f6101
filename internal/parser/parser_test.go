package parser_test

import (
	"testing"

	"github.com/UnendingLoop/minigrep/internal/model"
	"github.com/UnendingLoop/minigrep/internal/parser"
	"github.com/stretchr/testify/require"
)

func envWith(vars map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	}
}

func TestInitAppMode(t *testing.T) {
	cases := []struct {
		name    string
		args    []string
		env     map[string]string
		want    *model.AppInit
		wantIs  error
		wantErr string
	}{
		{
			name: "Positive - local, case-insensitive without env",
			args: []string{"Does it", "poem.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "Does it", FileName: "poem.txt"},
		},
		{
			name: "Positive - env present with value",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"CASE_SENSITIVE": "1"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "to", FileName: "poem.txt", CaseSensitive: true},
		},
		{
			name: "Positive - env present but empty",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"CASE_SENSITIVE": ""},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "to", FileName: "poem.txt", CaseSensitive: true},
		},
		{
			name: "Positive - env value 'false' still means present",
			args: []string{"to", "poem.txt"},
			env:  map[string]string{"CASE_SENSITIVE": "false"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "to", FileName: "poem.txt", CaseSensitive: true},
		},
		{
			name: "Positive - extra positional args ignored",
			args: []string{"to", "poem.txt", "other.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "to", FileName: "poem.txt"},
		},
		{
			name: "Positive - empty query is allowed",
			args: []string{"", "poem.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "", FileName: "poem.txt"},
		},
		{
			name: "Positive - query starting with dash after terminator",
			args: []string{"--", "-v", "poem.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "-v", FileName: "poem.txt"},
		},
		{
			name:   "Negative - missing query",
			args:   []string{},
			wantIs: parser.ErrMissingQuery,
		},
		{
			name:   "Negative - missing file name",
			args:   []string{"Does it"},
			wantIs: parser.ErrMissingFilename,
		},
		{
			name: "Positive - master with deduplicated nodes",
			args: []string{"-mode", "master", "-node", "http://a", "-node", "http://b", "-node", "http://a", "-quorum", "2", "it", "poem.txt"},
			want: &model.AppInit{
				Mode:     model.ModeMaster,
				Address:  model.DefaultMasterAddress,
				Slaves:   model.NodesList{"http://a", "http://b"},
				Quorum:   2,
				Query:    "it",
				FileName: "poem.txt",
			},
		},
		{
			name:    "Negative - master without nodes",
			args:    []string{"-mode", "master", "-quorum", "1", "it", "poem.txt"},
			wantErr: "at least one -node",
		},
		{
			name:    "Negative - master quorum above node count",
			args:    []string{"-mode", "master", "-node", "http://a", "-quorum", "2", "it", "poem.txt"},
			wantErr: "incorrect quorum",
		},
		{
			name:   "Negative - master missing file name",
			args:   []string{"-mode", "master", "-node", "http://a", "-quorum", "1", "it"},
			wantIs: parser.ErrMissingFilename,
		},
		{
			name: "Positive - slave",
			args: []string{"-mode", "slave", "-address", ":8081"},
			want: &model.AppInit{Mode: model.ModeSlave, Address: ":8081"},
		},
		{
			name:    "Negative - slave on master address",
			args:    []string{"-mode", "slave", "-address", model.DefaultMasterAddress},
			wantErr: "not available",
		},
		{
			name:    "Negative - slave without address",
			args:    []string{"-mode", "slave"},
			wantErr: "empty slave-node address",
		},
		{
			name:    "Negative - unknown mode",
			args:    []string{"-mode", "cluster", "it", "poem.txt"},
			wantErr: "unknown mode",
		},
		{
			name: "Positive - query looking like a flag",
			args: []string{"-v", "poem.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "-v", FileName: "poem.txt"},
		},
		{
			name: "Positive - query looking like a flag with value",
			args: []string{"-x=1", "poem.txt"},
			want: &model.AppInit{Mode: model.ModeLocal, Query: "-x=1", FileName: "poem.txt"},
		},
		{
			name:   "Negative - dash query without file name",
			args:   []string{"-v"},
			wantIs: parser.ErrMissingFilename,
		},
		{
			name: "Positive - double dash flag form",
			args: []string{"--mode=slave", "--address=:8081"},
			want: &model.AppInit{Mode: model.ModeSlave, Address: ":8081"},
		},
		{
			name:    "Negative - unknown flag after mode",
			args:    []string{"-mode", "local", "-x", "it", "poem.txt"},
			wantErr: "flag provided but not defined",
		},
	}

	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			res, err := parser.InitAppMode(tt.args, envWith(tt.env))

			switch {
			case tt.wantIs != nil:
				require.ErrorIs(t, err, tt.wantIs)
				require.Nil(t, res)
			case tt.wantErr != "":
				require.ErrorContains(t, err, tt.wantErr)
				require.Nil(t, res)
			default:
				require.NoError(t, err)
				require.Equal(t, tt.want, res)
			}
		})
	}
}
