package reporting

import "testing"

func TestPlaceholdersByDriver(t *testing.T) {
	pg := &Exporter{Driver: "pgx"}
	if got := pg.placeholders(3); got != "$1, $2, $3" {
		t.Errorf("pgx placeholders = %q", got)
	}

	lite := &Exporter{Driver: "sqlite"}
	if got := lite.placeholders(2); got != "?, ?" {
		t.Errorf("sqlite placeholders = %q", got)
	}
}

func TestQuoteIdent(t *testing.T) {
	if got := quoteIdent("Avg Distance (km)"); got != `"Avg Distance (km)"` {
		t.Errorf("quoted = %s", got)
	}
	if got := quoteIdent(`a"b`); got != `"a""b"` {
		t.Errorf("embedded quote = %s", got)
	}
}
