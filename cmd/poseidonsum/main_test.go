package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vocdoni/poseidon254"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return strings.TrimSpace(stdout.String()), stderr.String(), err
}

func TestPoseidonSum(t *testing.T) {
	ones := strings.Repeat("01", 32)
	twos := strings.Repeat("02", 32)

	cases := []struct {
		name string
		args []string
		want string
	}{
		{"decimal", []string{"--decimal", "1", "2"}, "115cc0f5e7d690413df64c6b9662e9cf2a3617f2743245519e19607a4417189a"},
		{"hex short", []string{"01", "0x0001"}, "007af346e2d304279e79e0a9f3023f771294a78acb70e73f90afe27cad401e81"},
		{"hex full", []string{ones, twos}, "0d54e1938f8a8c1c7deb5e0355f26319207b84fe9ca2ce1b26e735c829821990"},
		{"little endian", []string{"--le", ones, twos}, "90198229c835e7261bcea29cfe847b201963f255035eeb7d1c8c8a8f93e1540d"},
		{"little endian decimal", []string{"--le", "--decimal", "1", "2"}, "9a1817447a60199e51453274f217362acfe962966b4cf63d4190d6e7f5c05c11"},
		{"domain tag", []string{"--domain-tag", "1", ones, twos}, "09d63344d8b7bf756ba226f390b24496c8dfe5c96f22646322e37caca99a044b"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			out, _, err := execute(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, out)
		})
	}
}

func TestPoseidonSumErrors(t *testing.T) {
	_, _, err := execute(t, "")
	require.ErrorIs(t, err, poseidon254.ErrEmptyInput)

	_, _, err = execute(t, strings.Repeat("01", 33))
	require.ErrorIs(t, err, poseidon254.ErrInvalidInputLength)

	_, _, err = execute(t, "30644e72e131a029b85045b68181585d2833e84879b9709143e1f593f0000001")
	require.ErrorIs(t, err, poseidon254.ErrInputLargerThanModulus)

	_, _, err = execute(t, "zz")
	require.Error(t, err)

	_, _, err = execute(t, "--decimal", "12a")
	require.Error(t, err)

	_, _, err = execute(t, "--domain-tag", "x", "01")
	require.Error(t, err)

	args := make([]string, poseidon254.MaxInputs+1)
	for i := range args {
		args[i] = "01"
	}
	_, _, err = execute(t, args...)
	require.Error(t, err)

	_, _, err = execute(t)
	require.Error(t, err)
}

func TestPoseidonSumVerbose(t *testing.T) {
	out, logs, err := execute(t, "-v", "--decimal", "1", "2")
	require.NoError(t, err)
	require.Equal(t, "115cc0f5e7d690413df64c6b9662e9cf2a3617f2743245519e19607a4417189a", out)
	require.Contains(t, logs, "poseidon hasher ready")
}
