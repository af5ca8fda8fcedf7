package store

import (
	"strings"

	"github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-wa-desk/models"
)

const (
	tableContacts      = "contacts"
	tableCampaigns     = "campaigns"
	tableTemplates     = "templates"
	tableFollowUps     = "follow_ups"
	tableConversations = "conversations"
	tableChatMessages  = "chat_messages"

	filterAll = "all"
)

var (
	contactColumns = []string{
		"id", "name", "phone", "email", "status", "tags",
		"last_contact", "timezone", "preferences", "account_value", "notes",
	}
	campaignColumns = []string{
		"id", "name", "audience", "status", "sent", "delivered", "read_count",
		"replied", "progress", "scheduled_at", "message", "objective",
	}
	templateColumns = []string{
		"id", "name", "category", "language", "status", "last_updated",
		"body_preview", "usage", "channel", "provider_id",
		"header_type", "header_text", "footer", "buttons",
	}
)

// likeContains builds a case-insensitive "contains" predicate over expr.
// LIKE wildcards in needle match literally.
func likeContains(expr, needle string) squirrel.Sqlizer {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(needle))
	return squirrel.Expr("LOWER("+expr+") LIKE ? ESCAPE '\\'", "%"+escaped+"%")
}

func isFilterSet(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && !strings.EqualFold(v, filterAll)
}

// encodeList stores a list as ",a,b," so that a single element can be matched
// with LIKE '%,a,%'.
func encodeList(items []string) string {
	var b strings.Builder
	b.WriteByte(',')
	for _, item := range items {
		item = strings.TrimSpace(strings.ReplaceAll(item, ",", " "))
		if item == "" {
			continue
		}
		b.WriteString(item)
		b.WriteByte(',')
	}
	return b.String()
}

func decodeList(raw string) []string {
	return models.ParseTags(raw)
}

func (db *DB) buildListContactsQuery(filter models.ContactFilter) (string, []any, error) {
	q := db.builder.Select(contactColumns...).From(tableContacts)

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where(likeContains("name || ' ' || email || ' ' || phone", search))
	}
	if isFilterSet(string(filter.Status)) {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}
	if isFilterSet(filter.Tag) {
		// narrows the scan only; the exact tag match happens after decoding
		q = q.Where(likeContains("tags", encodeList([]string{filter.Tag})))
	}

	return q.OrderBy("id").ToSql()
}

func (db *DB) buildInsertContactQuery(c models.Contact) (string, []any, error) {
	return db.builder.Insert(tableContacts).
		Columns("name", "phone", "email", "status", "tags", "last_contact", "timezone", "preferences", "account_value", "notes").
		Values(c.Name, c.Phone, c.Email, string(c.Status), encodeList(c.Tags), c.LastContact.UTC(), c.Timezone, encodeList(c.Preferences), c.AccountValue, c.Notes).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildContactStatsQuery() (string, []any, error) {
	return db.builder.Select(
		"COUNT(*)",
		countWhere("status", string(models.ContactActive)),
		countWhere("status", string(models.ContactBlocked)),
	).From(tableContacts).ToSql()
}

func (db *DB) buildListCampaignsQuery(filter models.CampaignFilter) (string, []any, error) {
	q := db.builder.Select(campaignColumns...).From(tableCampaigns)

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where(likeContains("name", search))
	}
	if isFilterSet(string(filter.Status)) {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}

	return q.OrderBy("id").ToSql()
}

func (db *DB) buildInsertCampaignQuery(c models.Campaign) (string, []any, error) {
	var scheduledAt any
	if c.ScheduledAt != nil {
		scheduledAt = c.ScheduledAt.UTC()
	}

	return db.builder.Insert(tableCampaigns).
		Columns("name", "audience", "status", "sent", "delivered", "read_count", "replied", "progress", "scheduled_at", "message", "objective").
		Values(c.Name, c.Audience, string(c.Status), c.Sent, c.Delivered, c.Read, c.Replied, c.Progress, scheduledAt, c.Message, c.Objective).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildCampaignTotalsQuery() (string, []any, error) {
	return db.builder.Select(
		"COALESCE(SUM(sent), 0)",
		"COALESCE(SUM(delivered), 0)",
		"COALESCE(SUM(replied), 0)",
	).From(tableCampaigns).ToSql()
}

func (db *DB) buildListTemplatesQuery(filter models.TemplateFilter) (string, []any, error) {
	q := db.builder.Select(templateColumns...).From(tableTemplates)

	if search := strings.TrimSpace(filter.Search); search != "" {
		q = q.Where(likeContains("name || ' ' || category", search))
	}
	if isFilterSet(string(filter.Status)) {
		q = q.Where(squirrel.Eq{"status": string(filter.Status)})
	}
	if isFilterSet(filter.Category) {
		q = q.Where(squirrel.Eq{"category": filter.Category})
	}
	if isFilterSet(filter.Language) {
		q = q.Where(squirrel.Eq{"language": filter.Language})
	}

	return q.OrderBy("id").ToSql()
}

func (db *DB) buildInsertTemplateQuery(t models.Template) (string, []any, error) {
	return db.builder.Insert(tableTemplates).
		Columns("name", "category", "language", "status", "last_updated", "body_preview", "usage", "channel", "provider_id",
			"header_type", "header_text", "footer", "buttons").
		Values(t.Name, t.Category, t.Language, string(t.Status), t.LastUpdated.UTC(), t.BodyPreview, t.Usage, t.Channel, t.ProviderID,
			string(t.HeaderType), t.HeaderText, t.Footer, models.FormatTemplateButtons(t.Buttons)).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildTemplateStatsQuery() (string, []any, error) {
	return db.builder.Select(
		"COUNT(*)",
		countWhere("status", string(models.TemplateApproved)),
		countWhere("status", string(models.TemplateDraft)),
	).From(tableTemplates).ToSql()
}

func (db *DB) buildDistinctQuery(table, column string) (string, []any, error) {
	return db.builder.Select(column).Distinct().From(table).
		Where(squirrel.NotEq{column: ""}).
		OrderBy(column).
		ToSql()
}

func (db *DB) buildListFollowUpsQuery(status models.FollowUpStatus) (string, []any, error) {
	q := db.builder.Select(
		"f.id", "f.campaign_id", "f.contact_id", "f.notes", "f.due_at", "f.status", "f.priority",
		"COALESCE(cm.name, '')", "COALESCE(ct.name, '')",
	).
		From(tableFollowUps + " f").
		LeftJoin(tableCampaigns + " cm ON cm.id = f.campaign_id").
		LeftJoin(tableContacts + " ct ON ct.id = f.contact_id")

	if isFilterSet(string(status)) {
		q = q.Where(squirrel.Eq{"f.status": string(status)})
	}

	return q.OrderBy("f.due_at", "f.id").ToSql()
}

func (db *DB) buildInsertFollowUpQuery(f models.FollowUp) (string, []any, error) {
	return db.builder.Insert(tableFollowUps).
		Columns("campaign_id", "contact_id", "notes", "due_at", "status", "priority").
		Values(f.CampaignID, f.ContactID, f.Notes, f.DueAt.UTC(), string(f.Status), string(f.Priority)).
		Suffix("RETURNING id").
		ToSql()
}

func (db *DB) buildFollowUpStatsQuery() (string, []any, error) {
	return db.builder.Select(
		countWhere("status", string(models.FollowUpScheduled)),
		countWhere("status", string(models.FollowUpDone)),
		countWhere("status", string(models.FollowUpOverdue)),
	).From(tableFollowUps).ToSql()
}

func (db *DB) buildMarkOverdueQuery(now any) (string, []any, error) {
	return db.builder.Update(tableFollowUps).
		Set("status", string(models.FollowUpOverdue)).
		Where(squirrel.Eq{"status": string(models.FollowUpScheduled)}).
		Where(squirrel.Lt{"due_at": now}).
		ToSql()
}

func (db *DB) buildSetStatusQuery(table string, id int64, status string) (string, []any, error) {
	return db.builder.Update(table).
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()
}

func (db *DB) buildListConversationsQuery(search string) (string, []any, error) {
	q := db.selectConversations()
	if search = strings.TrimSpace(search); search != "" {
		q = q.Where(likeContains("ct.name || ' ' || ct.phone || ' ' || c.last_message", search))
	}
	return q.OrderBy("c.last_at DESC", "c.id").ToSql()
}

func (db *DB) buildGetConversationQuery(id int64) (string, []any, error) {
	return db.selectConversations().Where(squirrel.Eq{"c.id": id}).ToSql()
}

func (db *DB) selectConversations() squirrel.SelectBuilder {
	return db.builder.Select(
		"c.id", "c.contact_id", "ct.name", "ct.phone", "c.last_message", "c.last_at", "c.unread",
	).
		From(tableConversations + " c").
		Join(tableContacts + " ct ON ct.id = c.contact_id")
}

func (db *DB) buildListChatEntriesQuery(conversationID int64) (string, []any, error) {
	return db.builder.Select("id", "body", "sent_at", "direction", "status").
		From(tableChatMessages).
		Where(squirrel.Eq{"conversation_id": conversationID}).
		OrderBy("sent_at", "id").
		ToSql()
}

func countWhere(column, value string) string {
	// values are package constants, never user input
	return "COALESCE(SUM(CASE WHEN " + column + " = '" + value + "' THEN 1 ELSE 0 END), 0)"
}
