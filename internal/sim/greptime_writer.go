package sim

import (
	"context"
	"log"

	"rcpower/internal/battery"

	greptime "github.com/GreptimeTeam/greptimedb-ingester-go"
	ingesterContext "github.com/GreptimeTeam/greptimedb-ingester-go/context"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table"
	"github.com/GreptimeTeam/greptimedb-ingester-go/table/types"
)

// GreptimeDBWriter writes sample rows to GreptimeDB via the ingester client
type GreptimeDBWriter struct {
	client greptime.Client
	db     string
	table  string
}

// NewGreptimeDBWriter creates a new GreptimeDB writer and auto-creates the table if needed.
func NewGreptimeDBWriter(endpoint, database string) (*GreptimeDBWriter, error) {
	ctx := ingesterContext.NewContext(context.Background())
	client, err := greptime.NewClient(ctx, &greptime.Config{
		Endpoint: endpoint,
	})
	if err != nil {
		return nil, err
	}

	// Auto-create table schema
	ddl := `
CREATE TABLE IF NOT EXISTS ` + battery.SampleTableName + ` (
  run_id STRING TAG,
  time_s DOUBLE,
  current_a DOUBLE,
  consumed_mah DOUBLE,
  remaining_mah DOUBLE,
  eta_min DOUBLE,
  ts TIMESTAMP TIME INDEX
) WITH (ttl='30d')
`
	if _, err := client.SQL(ctx, ddl); err != nil {
		return nil, err
	}

	return &GreptimeDBWriter{
		client: client,
		db:     database,
		table:  battery.SampleTableName,
	}, nil
}

// Write inserts a single sample row.
func (w *GreptimeDBWriter) Write(row battery.SampleRow) error {
	return w.WriteBatch([]battery.SampleRow{row})
}

// WriteBatch inserts multiple sample rows.
func (w *GreptimeDBWriter) WriteBatch(rows []battery.SampleRow) error {
	if len(rows) == 0 {
		return nil
	}

	ctx := ingesterContext.NewContext(context.Background())

	tbl := table.New(w.table)
	tbl.AddTagColumn("run_id", types.StringType, 0)
	tbl.AddFieldColumn("time_s", types.Float64Type)
	tbl.AddFieldColumn("current_a", types.Float64Type)
	tbl.AddFieldColumn("consumed_mah", types.Float64Type)
	tbl.AddFieldColumn("remaining_mah", types.Float64Type)
	tbl.AddFieldColumn("eta_min", types.Float64Type)
	tbl.SetTimeIndex("ts", types.TimestampType)

	for _, r := range rows {
		tbl.AppendTagValue("run_id", r.RunID)
		tbl.AppendFieldValue("time_s", r.TimeS)
		tbl.AppendFieldValue("current_a", r.CurrentA)
		tbl.AppendFieldValue("consumed_mah", r.ConsumedmAh)
		tbl.AppendFieldValue("remaining_mah", r.RemainingmAh)
		tbl.AppendFieldValue("eta_min", r.ETAMin)
		tbl.AppendTimeIndex(r.Timestamp)
	}

	if err := w.client.Write(ctx, w.db, []*table.Table{tbl}); err != nil {
		log.Printf("[GreptimeDBWriter] Write failed: %v", err)
		return err
	}
	return nil
}
