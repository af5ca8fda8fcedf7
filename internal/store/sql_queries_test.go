// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-wa-desk/internal/logger"
	"github.com/MKhiriev/go-wa-desk/migrations"
	"github.com/MKhiriev/go-wa-desk/models"
)

func testDB(dialect migrations.Dialect) *DB {
	return newDB(nil, dialect, nil, logger.Nop())
}

func Test_buildListContactsQuery_NoFilter(t *testing.T) {
	query, args, err := testDB(migrations.DialectSQLite).buildListContactsQuery(models.ContactFilter{Status: "all", Tag: "all"})
	require.NoError(t, err)

	assert.Empty(t, args)
	q := strings.ToLower(query)
	assert.Contains(t, q, "from contacts")
	assert.NotContains(t, q, "where")
	assert.Contains(t, q, "order by id")
}

func Test_buildListContactsQuery_AllFilters(t *testing.T) {
	filter := models.ContactFilter{Search: "SaRa", Status: models.ContactActive, Tag: "VIP"}

	t.Run("sqlite placeholders", func(t *testing.T) {
		query, args, err := testDB(migrations.DialectSQLite).buildListContactsQuery(filter)
		require.NoError(t, err)

		assert.Equal(t, 3, strings.Count(query, "?"))
		assert.NotContains(t, query, "$1")
		assert.Equal(t, []any{"%sara%", "active", "%,vip,%"}, args)
	})

	t.Run("postgres placeholders", func(t *testing.T) {
		query, args, err := testDB(migrations.DialectPostgres).buildListContactsQuery(filter)
		require.NoError(t, err)

		assert.Contains(t, query, "$1")
		assert.Contains(t, query, "$3")
		assert.Len(t, args, 3)
		assert.Contains(t, query, "LOWER(name || ' ' || email || ' ' || phone) LIKE $1 ESCAPE '\\'")
	})
}

func Test_likeContains_EscapesWildcards(t *testing.T) {
	query, args, err := likeContains("name", `50%_off\`).ToSql()
	require.NoError(t, err)

	assert.Equal(t, "LOWER(name) LIKE ? ESCAPE '\\'", query)
	assert.Equal(t, []any{`%50\%\_off\\%`}, args)
}

func Test_buildInsertCampaignQuery_NullSchedule(t *testing.T) {
	db := testDB(migrations.DialectPostgres)

	query, args, err := db.buildInsertCampaignQuery(models.Campaign{Name: "Spring", Status: models.CampaignDraft})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(query, "RETURNING id"))
	require.Len(t, args, 11)
	assert.Nil(t, args[8])
	assert.Equal(t, "draft", args[2])

	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.FixedZone("X", 3600))
	_, args, err = db.buildInsertCampaignQuery(models.Campaign{Name: "Spring", ScheduledAt: &at})
	require.NoError(t, err)
	assert.Equal(t, at.UTC(), args[8])
}

func Test_buildListTemplatesQuery_Filters(t *testing.T) {
	query, args, err := testDB(migrations.DialectSQLite).buildListTemplatesQuery(models.TemplateFilter{
		Status:   models.TemplateApproved,
		Category: "Marketing",
		Language: "all",
	})
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "status = ?")
	assert.Contains(t, q, "category = ?")
	assert.NotContains(t, q, "language = ?")
	assert.Equal(t, []any{"approved", "Marketing"}, args)
}

func Test_buildInsertTemplateQuery_EncodesButtons(t *testing.T) {
	query, args, err := testDB(migrations.DialectPostgres).buildInsertTemplateQuery(models.Template{
		Name:       "Order Shipped",
		Status:     models.TemplateDraft,
		HeaderType: models.HeaderNone,
		Buttons:    models.ParseTemplateButtons("Track|https://t.example; Thanks"),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "RETURNING id")
	assert.Contains(t, query, "$13")
	require.Len(t, args, 13)
	assert.Equal(t, "none", args[9])
	assert.Equal(t, "Track|https://t.example; Thanks", args[12])
}

func Test_buildListFollowUpsQuery_JoinsNames(t *testing.T) {
	query, args, err := testDB(migrations.DialectSQLite).buildListFollowUpsQuery(models.FollowUpOverdue)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "left join campaigns cm")
	assert.Contains(t, q, "left join contacts ct")
	assert.Contains(t, q, "order by f.due_at, f.id")
	assert.Equal(t, []any{"overdue"}, args)
}

func Test_buildMarkOverdueQuery(t *testing.T) {
	now := time.Now().UTC()

	query, args, err := testDB(migrations.DialectPostgres).buildMarkOverdueQuery(now)
	require.NoError(t, err)

	assert.Equal(t, "UPDATE follow_ups SET status = $1 WHERE status = $2 AND due_at < $3", query)
	assert.Equal(t, []any{"overdue", "scheduled", now}, args)
}

func Test_encodeList(t *testing.T) {
	assert.Equal(t, ",", encodeList(nil))
	assert.Equal(t, ",VIP,Customer,", encodeList([]string{" VIP", "", "Customer "}))
	assert.Equal(t, ",a b,", encodeList([]string{"a,b"}))

	assert.Equal(t, []string{"VIP", "Customer"}, decodeList(",VIP,Customer,"))
	assert.Empty(t, decodeList(","))
}

func Test_isPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN(":memory:"))
	assert.False(t, isPostgresDSN("desk.db"))
}
