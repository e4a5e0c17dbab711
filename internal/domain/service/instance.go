package service

import (
	"github.com/diegoclair/channel-gatekeeper/internal/domain/contract"
	"go.uber.org/zap"
)

// Dependencies are the adapters the engine talks to. Notifier, Reporter and
// ChannelInfo may be nil.
type Dependencies struct {
	DataManager contract.DataManager
	Gateway     contract.ApprovalGateway
	Notifier    contract.Notifier
	Reporter    contract.Reporter
	ChannelInfo contract.ChannelInfoFetcher
	Logger      *zap.Logger
}

type Instance struct {
	Admission contract.AdmissionService
	Admin     contract.AdminService
	Scheduler *scheduler
}

func NewInstance(deps Dependencies, opts Options) *Instance {
	opts = opts.withDefaults()

	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	queue := newQueueManager(deps.DataManager, opts.Now)
	executor := &batchExecutor{
		dm:       deps.DataManager,
		queue:    queue,
		gateway:  deps.Gateway,
		notifier: deps.Notifier,
		reporter: deps.Reporter,
		locks:    newChannelLocks(),
		now:      opts.Now,
		loc:      opts.Location,
		logger:   logger.Named("executor"),
	}
	scheduler := newScheduler(deps.DataManager, executor, opts, logger.Named("scheduler"))

	return &Instance{
		Admission: newAdmission(deps.DataManager, queue, executor, logger.Named("admission")),
		Admin: &adminService{
			dm:        deps.DataManager,
			queue:     queue,
			executor:  executor,
			scheduler: scheduler,
			info:      deps.ChannelInfo,
			now:       opts.Now,
			loc:       opts.Location,
			logger:    logger.Named("admin"),
		},
		Scheduler: scheduler,
	}
}
