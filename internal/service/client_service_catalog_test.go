package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/mock"
	"github.com/MKhiriev/go-wa-desk/internal/store"
	"github.com/MKhiriev/go-wa-desk/internal/validators"
	"github.com/MKhiriev/go-wa-desk/models"
)

var fixedNow = time.Date(2026, 10, 17, 15, 4, 5, 0, time.UTC)

// ── contacts ─────────────────────────────────────────────────────────────────

func TestContactService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)
	svc := NewContactService(repo).(*contactService)
	svc.now = func() time.Time { return fixedNow }

	want := models.Contact{
		Name:        "Nina Park",
		Phone:       "+1 234 567 8906",
		Email:       "nina@example.com",
		Status:      models.ContactActive,
		Tags:        []string{"VIP", "Lead"},
		LastContact: time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC),
	}

	repo.EXPECT().CreateContact(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, got models.Contact) (models.Contact, error) {
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("CreateContact() mismatch (-want +got):\n%s", diff)
			}
			got.ID = 6
			return got, nil
		})

	created, err := svc.Create(context.Background(), models.NewContact{
		Name:  " Nina Park ",
		Phone: "+1 234 567 8906",
		Email: "nina@example.com",
		Tags:  "VIP, , Lead",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), created.ID)
}

func TestContactService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewContactService(mock.NewMockContactRepository(ctrl))

	_, err := svc.Create(context.Background(), models.NewContact{Name: "Ann"})
	assert.ErrorIs(t, err, validators.ErrEmptyPhone)
}

func TestContactService_SetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockContactRepository(ctrl)
	svc := NewContactService(repo)

	repo.EXPECT().SetContactStatus(gomock.Any(), int64(2), models.ContactBlocked).Return(nil)
	require.NoError(t, svc.SetStatus(context.Background(), 2, models.ContactBlocked))

	assert.ErrorIs(t, svc.SetStatus(context.Background(), 2, "vip"), validators.ErrInvalidStatus)
}

// ── campaigns ────────────────────────────────────────────────────────────────

func TestCampaignService_Create(t *testing.T) {
	at := fixedNow.Add(48 * time.Hour)

	tests := []struct {
		name string
		in   models.NewCampaign
		want models.Campaign
	}{
		{
			name: "draft with default audience",
			in:   models.NewCampaign{Name: "Holiday"},
			want: models.Campaign{Name: "Holiday", Audience: DefaultAudience, Status: models.CampaignDraft},
		},
		{
			name: "scheduled",
			in:   models.NewCampaign{Name: "Launch", Audience: "VIP customers", ScheduledAt: &at, Message: " hi "},
			want: models.Campaign{Name: "Launch", Audience: "VIP customers", Status: models.CampaignScheduled, ScheduledAt: &at, Message: "hi"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockCampaignRepository(ctrl)
			svc := NewCampaignService(repo)

			repo.EXPECT().CreateCampaign(gomock.Any(), tt.want).Return(tt.want, nil)

			got, err := svc.Create(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want.Status, got.Status)
		})
	}
}

func TestCampaignService_Create_NameRequired(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewCampaignService(mock.NewMockCampaignRepository(ctrl))

	_, err := svc.Create(context.Background(), models.NewCampaign{Name: " "})
	assert.ErrorIs(t, err, validators.ErrEmptyName)
}

func TestCampaignService_TogglePause(t *testing.T) {
	tests := []struct {
		name    string
		current models.CampaignStatus
		want    models.CampaignStatus
		wantErr error
	}{
		{"pause active", models.CampaignActive, models.CampaignPaused, nil},
		{"resume paused", models.CampaignPaused, models.CampaignActive, nil},
		{"draft stays", models.CampaignDraft, models.CampaignDraft, ErrCampaignNotPausable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := mock.NewMockCampaignRepository(ctrl)
			svc := NewCampaignService(repo)

			repo.EXPECT().GetCampaign(gomock.Any(), int64(3)).Return(models.Campaign{ID: 3, Status: tt.current}, nil)
			if tt.wantErr == nil {
				repo.EXPECT().SetCampaignStatus(gomock.Any(), int64(3), tt.want).Return(nil)
			}

			got, err := svc.TogglePause(context.Background(), 3)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Status)
		})
	}
}

func TestCampaignService_TogglePause_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockCampaignRepository(ctrl)
	svc := NewCampaignService(repo)

	repo.EXPECT().GetCampaign(gomock.Any(), int64(9)).Return(models.Campaign{}, store.ErrCampaignNotFound)

	_, err := svc.TogglePause(context.Background(), 9)
	assert.ErrorIs(t, err, store.ErrCampaignNotFound)
}

// ── templates ────────────────────────────────────────────────────────────────

func TestTemplateService_CheckRemote(t *testing.T) {
	pending := models.Template{ID: 3, Name: "Payment Reminder", Status: models.TemplatePending, ProviderID: "payment_reminder"}

	t.Run("known status is stored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTemplateRepository(ctrl)
		messages := mock.NewMockMessageService(ctrl)
		svc := NewTemplateService(repo, messages).(*templateService)
		svc.now = func() time.Time { return fixedNow }

		repo.EXPECT().GetTemplate(gomock.Any(), int64(3)).Return(pending, nil)
		messages.EXPECT().TemplateStatus(gomock.Any(), "payment_reminder").
			Return(models.TemplateStatus{ID: "payment_reminder", Status: "APPROVED"}, nil)
		repo.EXPECT().SetTemplateStatus(gomock.Any(), int64(3), models.TemplateApproved, fixedNow).Return(nil)

		check, err := svc.CheckRemote(context.Background(), 3)
		require.NoError(t, err)
		assert.True(t, check.Changed)
		assert.Equal(t, "APPROVED", check.ProviderStatus)
		assert.Equal(t, models.TemplateApproved, check.Template.Status)
		assert.Equal(t, fixedNow, check.Template.LastUpdated)
	})

	t.Run("unknown status leaves template", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTemplateRepository(ctrl)
		messages := mock.NewMockMessageService(ctrl)
		svc := NewTemplateService(repo, messages)

		repo.EXPECT().GetTemplate(gomock.Any(), int64(3)).Return(pending, nil)
		messages.EXPECT().TemplateStatus(gomock.Any(), "payment_reminder").
			Return(models.TemplateStatus{ID: "payment_reminder"}, nil)

		check, err := svc.CheckRemote(context.Background(), 3)
		require.NoError(t, err)
		assert.False(t, check.Changed)
		assert.Equal(t, models.TemplatePending, check.Template.Status)
	})

	t.Run("draft never submitted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTemplateRepository(ctrl)
		svc := NewTemplateService(repo, mock.NewMockMessageService(ctrl))

		repo.EXPECT().GetTemplate(gomock.Any(), int64(4)).Return(models.Template{ID: 4, Status: models.TemplateDraft}, nil)

		_, err := svc.CheckRemote(context.Background(), 4)
		assert.ErrorIs(t, err, ErrTemplateNotSubmitted)
	})

	t.Run("backend failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock.NewMockTemplateRepository(ctrl)
		messages := mock.NewMockMessageService(ctrl)
		svc := NewTemplateService(repo, messages)

		boom := errors.New("dial tcp: connection refused")
		repo.EXPECT().GetTemplate(gomock.Any(), int64(3)).Return(pending, nil)
		messages.EXPECT().TemplateStatus(gomock.Any(), "payment_reminder").Return(models.TemplateStatus{}, boom)

		_, err := svc.CheckRemote(context.Background(), 3)
		assert.ErrorIs(t, err, boom)
	})
}

func TestTemplateService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockTemplateRepository(ctrl)
	svc := NewTemplateService(repo, mock.NewMockMessageService(ctrl)).(*templateService)
	svc.now = func() time.Time { return fixedNow }

	buttons := models.ParseTemplateButtons("Track|https://shop.example/track; Thanks")
	want := models.Template{
		Name:        "Order Shipped",
		Category:    "Marketing",
		Language:    "English",
		Status:      models.TemplateDraft,
		LastUpdated: fixedNow,
		BodyPreview: "Hi {{1}}, {{2}} is on its way.",
		Usage:       "Draft",
		Channel:     "WhatsApp",
		HeaderType:  models.HeaderNone,
		Footer:      "Greenwave",
		Buttons:     buttons,
	}

	var stored models.Template
	repo.EXPECT().CreateTemplate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, tpl models.Template) (models.Template, error) {
			stored = tpl
			tpl.ID = 7
			return tpl, nil
		})

	created, err := svc.Create(context.Background(), models.NewTemplate{
		Name:       " Order Shipped ",
		HeaderText: "dropped without a header",
		Body:       "Hi {{1}}, {{2}} is on its way.",
		Footer:     "Greenwave",
		Buttons:    buttons,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(7), created.ID)
	if diff := cmp.Diff(want, stored); diff != "" {
		t.Errorf("stored template mismatch (-want +got):\n%s", diff)
	}
}

func TestTemplateService_Create_Invalid(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := NewTemplateService(mock.NewMockTemplateRepository(ctrl), mock.NewMockMessageService(ctrl))

	_, err := svc.Create(context.Background(), models.NewTemplate{
		Name:    "Too many",
		Body:    "Hi",
		Buttons: models.ParseTemplateButtons("a|https://a; b|https://b; c|https://c"),
	})
	assert.ErrorIs(t, err, validators.ErrTooManyButtons)
}

// ── dashboard ────────────────────────────────────────────────────────────────

func TestDashboardService_Summary(t *testing.T) {
	ctrl := gomock.NewController(t)
	contacts := mock.NewMockContactService(ctrl)
	campaigns := mock.NewMockCampaignService(ctrl)
	templates := mock.NewMockTemplateService(ctrl)
	followUps := mock.NewMockFollowUpService(ctrl)
	svc := NewDashboardService(contacts, campaigns, templates, followUps)

	contacts.EXPECT().Stats(gomock.Any()).Return(models.ContactStats{Total: 5, Active: 4, Blocked: 1}, nil)
	campaigns.EXPECT().Totals(gomock.Any()).Return(models.CampaignTotals{Sent: 200, Delivered: 150, Replied: 12}, nil)
	campaigns.EXPECT().List(gomock.Any(), models.CampaignFilter{}).Return([]models.Campaign{
		{ID: 1, Status: models.CampaignActive},
		{ID: 2, Status: models.CampaignScheduled},
		{ID: 3, Status: models.CampaignActive},
		{ID: 4, Status: models.CampaignDraft},
	}, nil)
	templates.EXPECT().Stats(gomock.Any()).Return(models.TemplateStats{Total: 6, Approved: 3, Drafts: 1}, nil)
	followUps.EXPECT().Stats(gomock.Any()).Return(models.FollowUpStats{Scheduled: 2, Overdue: 1}, nil)

	summary, err := svc.Summary(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(200), summary.MessagesSent)
	assert.InDelta(t, 75.0, summary.DeliveryRate(), 1e-9)
	assert.Equal(t, 5, summary.TotalContacts)
	assert.Equal(t, 2, summary.ActiveCampaigns)
	assert.Equal(t, 1, summary.ScheduledCampaigns)
	assert.Equal(t, 3, summary.ApprovedTemplates)
	assert.Equal(t, 1, summary.OverdueFollowUps)

	ids := make([]int64, 0, len(summary.RecentCampaigns))
	for _, c := range summary.RecentCampaigns {
		ids = append(ids, c.ID)
	}
	assert.Equal(t, []int64{4, 3, 2}, ids)
}

func TestDashboardService_Summary_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	contacts := mock.NewMockContactService(ctrl)
	svc := NewDashboardService(contacts, mock.NewMockCampaignService(ctrl), mock.NewMockTemplateService(ctrl), mock.NewMockFollowUpService(ctrl))

	boom := errors.New("database is locked")
	contacts.EXPECT().Stats(gomock.Any()).Return(models.ContactStats{}, boom)

	_, err := svc.Summary(context.Background())
	assert.ErrorIs(t, err, boom)
}

// ── follow-ups ───────────────────────────────────────────────────────────────

func TestFollowUpService_List_UnknownNames(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFollowUpRepository(ctrl)
	svc := NewFollowUpService(repo)

	repo.EXPECT().ListFollowUps(gomock.Any(), models.FollowUpStatus("all")).Return([]models.FollowUpView{
		{FollowUp: models.FollowUp{ID: 1}, CampaignName: "Summer Sale 2024", ContactName: ""},
		{FollowUp: models.FollowUp{ID: 2}, CampaignName: "", ContactName: "Sarah Johnson"},
	}, nil)

	views, err := svc.List(context.Background(), "all")
	require.NoError(t, err)
	require.Len(t, views, 2)
	assert.Equal(t, "Unknown", views[0].ContactName)
	assert.Equal(t, "Unknown", views[1].CampaignName)
	assert.Equal(t, "Summer Sale 2024", views[0].CampaignName)
}

func TestFollowUpService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFollowUpRepository(ctrl)
	svc := NewFollowUpService(repo)
	due := fixedNow.Add(time.Hour)

	repo.EXPECT().CreateFollowUp(gomock.Any(), models.FollowUp{
		CampaignID: 1, ContactID: 2, Notes: "call back", DueAt: due,
		Status: models.FollowUpScheduled, Priority: models.PriorityMedium,
	}).Return(models.FollowUp{ID: 3}, nil)

	got, err := svc.Create(context.Background(), models.NewFollowUp{CampaignID: 1, ContactID: 2, Notes: " call back ", DueAt: due})
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.ID)

	_, err = svc.Create(context.Background(), models.NewFollowUp{CampaignID: 1, ContactID: 2, DueAt: due})
	assert.ErrorIs(t, err, validators.ErrEmptyNotes)
}

func TestFollowUpService_MarkOverdue_UsesClock(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockFollowUpRepository(ctrl)
	svc := NewFollowUpService(repo).(*followUpService)
	svc.now = func() time.Time { return fixedNow }

	repo.EXPECT().MarkOverdue(gomock.Any(), fixedNow).Return(int64(1), nil)

	n, err := svc.MarkOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
}

// ── overdue job ──────────────────────────────────────────────────────────────

type spyFollowUpService struct {
	FollowUpService
	calls atomic.Int64
}

func (s *spyFollowUpService) MarkOverdue(_ context.Context) (int64, error) {
	s.calls.Add(1)
	return 0, nil
}

func TestOverdueJob_SweepsImmediatelyAndOnTick(t *testing.T) {
	defer goleak.VerifyNone(t)

	spy := &spyFollowUpService{}
	job := NewOverdueJob(spy)

	job.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	job.Stop()

	got := spy.calls.Load()
	assert.GreaterOrEqual(t, got, int64(3), "MarkOverdue calls: %d", got)

	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, got, spy.calls.Load(), "no sweeps after Stop")
}

func TestOverdueJob_Stop_BeforeStart_NoPanic(t *testing.T) {
	job := NewOverdueJob(&spyFollowUpService{})
	assert.NotPanics(t, func() { job.Stop() })
}

func TestOverdueJob_ConcurrentStartStop(t *testing.T) {
	defer goleak.VerifyNone(t)

	job := NewOverdueJob(&spyFollowUpService{}).(*overdueJob)

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func() {
			job.Start(context.Background(), time.Millisecond)
			done <- struct{}{}
		}()
		go func() {
			job.Stop()
			done <- struct{}{}
		}()
	}
	for i := 0; i < 16; i++ {
		<-done
	}

	job.Stop()
	assert.Nil(t, job.cancel)
}

// ── aggregate ────────────────────────────────────────────────────────────────

func TestNewClientServices_WithoutStorage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svcs := NewClientServices(nil, mock.NewMockBackendAdapter(ctrl), config.ClientWorkers{})

	assert.NotNil(t, svcs.MessageService)
	assert.NotNil(t, svcs.StatusPoller)
	assert.False(t, svcs.HasCatalog())
	assert.Nil(t, svcs.OverdueJob)
}
