package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/dashmeta/intraday-metrics-api/infrastructure/database/postgres"
	"github.com/dashmeta/intraday-metrics-api/internal/domain"
)

const (
	snapshotsTable = "intraday_snapshots s"
)

type SnapshotRepository interface {
	// SaveOrUpdate persiste o snapshot inteiro em uma única escrita. O ID é
	// derivado do minuto da coleta: duas coletas no mesmo minuto colidem e a
	// última sobrescreve a primeira (last writer wins, comportamento
	// documentado; chamadores não devem disparar coletas sobrepostas)
	SaveOrUpdate(snapshot *domain.Snapshot) error
	// ListRecent retorna até limit snapshots ordenados por ts decrescente
	ListRecent(limit int) ([]*domain.Snapshot, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveOrUpdate(snapshot *domain.Snapshot) error {
	campaignJSON, adsetJSON, adJSON, err := marshalLevels(snapshot)
	if err != nil {
		return err
	}

	query := squirrel.StatementBuilder.
		Insert("intraday_snapshots").
		Columns("id", "ts", "date", "campaign", "adset", "ad").
		Values(
			snapshot.ID,
			snapshot.CollectedAt,
			snapshot.Date,
			campaignJSON,
			adsetJSON,
			adJSON,
		).
		Suffix(`
			ON CONFLICT (id) DO UPDATE SET
				ts = EXCLUDED.ts,
				date = EXCLUDED.date,
				campaign = EXCLUDED.campaign,
				adset = EXCLUDED.adset,
				ad = EXCLUDED.ad,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao executar a query: %w", err)
	}

	return nil
}

func (r *snapshotRepository) ListRecent(limit int) ([]*domain.Snapshot, error) {
	query, args, err := squirrel.
		Select("s.id, s.ts, s.date, s.campaign, s.adset, s.ad").
		From(snapshotsTable).
		OrderBy("s.ts DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	snapshots := make([]*domain.Snapshot, 0)
	for rows.Next() {
		snapshot, err := r.scanSnapshot(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear snapshot: %w", err)
		}
		snapshots = append(snapshots, snapshot)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return snapshots, nil
}

func (r *snapshotRepository) scanSnapshot(rows *sql.Rows) (*domain.Snapshot, error) {
	snapshot := &domain.Snapshot{}
	var date time.Time
	var campaignJSON, adsetJSON, adJSON []byte

	err := rows.Scan(
		&snapshot.ID,
		&snapshot.CollectedAt,
		&date,
		&campaignJSON,
		&adsetJSON,
		&adJSON,
	)
	if err != nil {
		return nil, err
	}

	snapshot.Date = date.Format("2006-01-02")

	if err := unmarshalLevel(campaignJSON, &snapshot.Campaign); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do nível campaign: %w", err)
	}
	if err := unmarshalLevel(adsetJSON, &snapshot.Adset); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do nível adset: %w", err)
	}
	if err := unmarshalLevel(adJSON, &snapshot.Ad); err != nil {
		return nil, fmt.Errorf("erro ao deserializar JSON do nível ad: %w", err)
	}

	return snapshot, nil
}

func marshalLevels(snapshot *domain.Snapshot) ([]byte, []byte, []byte, error) {
	campaignJSON, err := json.Marshal(snapshot.Campaign)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao serializar o nível campaign para JSON: %w", err)
	}

	adsetJSON, err := json.Marshal(snapshot.Adset)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao serializar o nível adset para JSON: %w", err)
	}

	adJSON, err := json.Marshal(snapshot.Ad)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("erro ao serializar o nível ad para JSON: %w", err)
	}

	return campaignJSON, adsetJSON, adJSON, nil
}

func unmarshalLevel(data []byte, records *[]domain.MetricRecord) error {
	if data == nil {
		return nil
	}
	return json.Unmarshal(data, records)
}
