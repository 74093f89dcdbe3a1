package sqlstore

import "fmt"

var eventColumns = []string{
	"case_id",
	"actor_id",
	"team",
	"application",
	"window_label",
	"activity",
	"step",
	"duration_seconds",
	"mouse_click_count",
	"keypress_count",
	"copy_count",
	"paste_count",
	"start_time",
	"end_time",
}

const postgresTable = `
CREATE TABLE IF NOT EXISTS %s (
    id                BIGSERIAL PRIMARY KEY,
    case_id           TEXT NOT NULL,
    actor_id          TEXT NOT NULL,
    team              TEXT NOT NULL DEFAULT '',
    application       TEXT NOT NULL DEFAULT '',
    window_label      TEXT NOT NULL,
    activity          TEXT NOT NULL,
    step              TEXT NOT NULL DEFAULT '',
    duration_seconds  DOUBLE PRECISION NOT NULL DEFAULT 0 CHECK (duration_seconds >= 0),
    mouse_click_count BIGINT NOT NULL DEFAULT 0,
    keypress_count    BIGINT NOT NULL DEFAULT 0,
    copy_count        BIGINT NOT NULL DEFAULT 0,
    paste_count       BIGINT NOT NULL DEFAULT 0,
    start_time        TIMESTAMPTZ,
    end_time          TIMESTAMPTZ
)`

const sqliteTable = `
CREATE TABLE IF NOT EXISTS %s (
    id                INTEGER PRIMARY KEY,
    case_id           TEXT NOT NULL,
    actor_id          TEXT NOT NULL,
    team              TEXT NOT NULL DEFAULT '',
    application       TEXT NOT NULL DEFAULT '',
    window_label      TEXT NOT NULL,
    activity          TEXT NOT NULL,
    step              TEXT NOT NULL DEFAULT '',
    duration_seconds  REAL NOT NULL DEFAULT 0 CHECK (duration_seconds >= 0),
    mouse_click_count INTEGER NOT NULL DEFAULT 0,
    keypress_count    INTEGER NOT NULL DEFAULT 0,
    copy_count        INTEGER NOT NULL DEFAULT 0,
    paste_count       INTEGER NOT NULL DEFAULT 0,
    start_time        TIMESTAMP,
    end_time          TIMESTAMP
)`

func schemaStatements(driver, table string) []string {
	ddl := postgresTable
	if driver == DriverSQLite {
		ddl = sqliteTable
	}

	return []string{
		fmt.Sprintf(ddl, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_case ON %s(case_id)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_actor ON %s(actor_id)", table, table),
		fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_%s_team ON %s(team)", table, table),
	}
}
