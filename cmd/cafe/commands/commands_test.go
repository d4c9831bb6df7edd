package commands

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"cafepos/pkg/config"
	"cafepos/pkg/logger"
)

func TestHashPrintsCashierEntry(t *testing.T) {
	cmd := hashCmd()
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("s3cret\n"))
	cmd.SetOut(out)
	cmd.SetArgs([]string{"ana"})
	require.NoError(t, cmd.Execute())

	entries, err := config.ParseCashiers(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	require.NoError(t, bcrypt.CompareHashAndPassword([]byte(entries["ana"]), []byte("s3cret")))
}

func TestHashRejectsEmptyPassword(t *testing.T) {
	cmd := hashCmd()
	cmd.SetIn(strings.NewReader("\n"))
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"ana"})
	require.Error(t, cmd.Execute())
}

func TestMenuUsesBuiltInCatalog(t *testing.T) {
	cfg = config.Config{Currency: "€"}
	log = logger.Nop()

	cmd := menuCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetArgs(nil)
	require.NoError(t, cmd.Execute())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 13)
	require.Equal(t, "1. Coffee - €1.50", lines[0])
	require.Equal(t, "13. Nestea - €2.30", lines[12])
}
