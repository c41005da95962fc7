package db

import "testing"

func TestNormalizeDSN(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"  file:archive.db?cache=shared  ", "file:archive.db?cache=shared"},
		{`"file:archive.db"`, "file:archive.db"},
		{"postgres://u:p@localhost/archive", "postgres://u:p@localhost/archive"},
		{"host=localhost user=archive dbname=archive", "host=localhost user=archive dbname=archive sslmode=disable"},
		{"host=localhost  user=archive   sslmode=require", "host=localhost user=archive sslmode=require"},
		{":memory:", ":memory:"},
	}
	for _, c := range cases {
		if got := NormalizeDSN(c.in); got != c.want {
			t.Errorf("NormalizeDSN(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestIsSQLite(t *testing.T) {
	sqlite := []string{"file:archive.db", ":memory:", "archive.db", "data.sqlite", "data.sqlite3"}
	for _, dsn := range sqlite {
		if !IsSQLite(dsn) {
			t.Errorf("IsSQLite(%q) = false, want true", dsn)
		}
	}
	if IsSQLite("postgres://u:p@localhost/archive") {
		t.Error("IsSQLite(postgres URL) = true, want false")
	}
}

// A quoted or padded sqlite DSN from the environment must still open with
// the sqlite driver rather than being handed to postgres.
func TestConnectNormalizesQuotedSQLiteDSN(t *testing.T) {
	raw := ` "file:dsnwiring?mode=memory&cache=shared" `
	if IsSQLite(raw) {
		t.Fatal("raw DSN should not match sqlite before normalization")
	}
	conn, err := Connect(raw)
	if err != nil {
		t.Fatalf("Connect(%q): %v", raw, err)
	}
	sqlDB, err := conn.DB()
	if err != nil {
		t.Fatalf("unwrap connection: %v", err)
	}
	defer sqlDB.Close()
	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}
}
