package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvertArg(t *testing.T) {
	tests := []struct {
		arg  string
		want bool
	}{
		{arg: "invert", want: true},
		{arg: "", want: false},
		{arg: "Invert", want: false},
		{arg: "invert ", want: false},
		{arg: "true", want: false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, invertArg(tt.arg), "arg %q", tt.arg)
	}
}

func TestParseFit(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		columns int
		rows    int
		wantErr bool
	}{
		{name: "plain", in: "80,25", columns: 80, rows: 25},
		{name: "spaces", in: " 100 , 200 ", columns: 100, rows: 200},
		{name: "missing rows", in: "80", wantErr: true},
		{name: "too many parts", in: "80,25,3", wantErr: true},
		{name: "not a number", in: "80,abc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			columns, rows, err := parseFit(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.columns, columns)
			assert.Equal(t, tt.rows, rows)
		})
	}
}
