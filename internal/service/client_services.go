package service

import (
	"github.com/MKhiriev/go-wa-desk/internal/adapter"
	"github.com/MKhiriev/go-wa-desk/internal/config"
	"github.com/MKhiriev/go-wa-desk/internal/store"
)

// ClientServices groups the services used by the desk UI and wactl. The
// catalog services are nil when no storage is given.
type ClientServices struct {
	MessageService   MessageService
	StatusPoller     StatusPoller
	ContactService   ContactService
	CampaignService  CampaignService
	TemplateService  TemplateService
	FollowUpService  FollowUpService
	DashboardService DashboardService
	InboxService     InboxService
	OverdueJob       OverdueJob
}

func NewClientServices(storages *store.ClientStorages, backend adapter.BackendAdapter, workers config.ClientWorkers) *ClientServices {
	messageSvc := NewMessageService(backend)

	svcs := &ClientServices{
		MessageService: messageSvc,
		StatusPoller:   NewStatusPoller(messageSvc, workers.StatusPollInterval),
	}
	if storages == nil {
		return svcs
	}

	followUpSvc := NewFollowUpService(storages.FollowUps)

	svcs.ContactService = NewContactService(storages.Contacts)
	svcs.CampaignService = NewCampaignService(storages.Campaigns)
	svcs.TemplateService = NewTemplateService(storages.Templates, messageSvc)
	svcs.FollowUpService = followUpSvc
	svcs.DashboardService = NewDashboardService(svcs.ContactService, svcs.CampaignService, svcs.TemplateService, followUpSvc)
	svcs.InboxService = NewInboxService(storages.Conversations)
	svcs.OverdueJob = NewOverdueJob(followUpSvc)

	return svcs
}

// HasCatalog reports whether the catalog services are available.
func (s *ClientServices) HasCatalog() bool {
	return s.ContactService != nil
}
