package cmd

import (
	"log/slog"

	"replenish/internal/adapters/out/postgres"
	"replenish/internal/core/application/usecases/commands"
	"replenish/internal/core/application/usecases/queries"
	"replenish/internal/core/domain/services"
	"replenish/internal/core/ports"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	notifier   ports.Notifier
	calendar   services.WorkCalendar
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	notifier ports.Notifier,
	calendar services.WorkCalendar,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		notifier:   notifier,
		calendar:   calendar,
		logger:     logger,
	}
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.fullUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateRaiseIssueCommandHandler() commands.RaiseIssueCommandHandler {
	return commands.NewRaiseIssueCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateReplyIssueCommandHandler() commands.ReplyIssueCommandHandler {
	return commands.NewReplyIssueCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartArrangingCommandHandler() commands.StartArrangingCommandHandler {
	return commands.NewStartArrangingCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateMarkArrangedCommandHandler() commands.MarkArrangedCommandHandler {
	return commands.NewMarkArrangedCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateSendForPackagingCommandHandler() commands.SendForPackagingCommandHandler {
	return commands.NewSendForPackagingCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateStartPackagingCommandHandler() commands.StartPackagingCommandHandler {
	return commands.NewStartPackagingCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateDispatchOrderCommandHandler() commands.DispatchOrderCommandHandler {
	return commands.NewDispatchOrderCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateConfirmReceivedCommandHandler() commands.ConfirmReceivedCommandHandler {
	return commands.NewConfirmReceivedCommandHandler(
		c.orderUoWFactory(), c.notifier, c.calendar, c.config.AutoCloseWorkingHours)
}

func (c *CompositionRoot) CreateReportDeliveryIssuesCommandHandler() commands.ReportDeliveryIssuesCommandHandler {
	return commands.NewReportDeliveryIssuesCommandHandler(c.orderUoWFactory(), c.notifier)
}

func (c *CompositionRoot) CreateCloseDueOrdersCommandHandler() commands.CloseDueOrdersCommandHandler {
	return commands.NewCloseDueOrdersCommandHandler(c.orderUoWFactory(), c.notifier, c.logger)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnclosedOrdersQueryHandler() queries.GetUnclosedOrdersQueryHandler {
	return queries.NewGetUnclosedOrdersQueryHandler(c.gormDB)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
