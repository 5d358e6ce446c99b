package cmd

import (
	"lastmile/internal/adapters/out/postgres"
	"lastmile/internal/core/application/usecases/commands"
	"lastmile/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePackageCommandHandler(f)
}

func (c *CompositionRoot) CreateTransitionPackageStatusCommandHandler() commands.TransitionPackageStatusCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionPackageStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateStartRouteCommandHandler() commands.StartRouteCommandHandler {
	var f commands.LedgerUoWFactory = FuncLedgerUoWFactory(func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartRouteCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignPackagesCommandHandler() commands.AssignPackagesCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPackagesCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignByAreaCommandHandler() commands.AssignByAreaCommandHandler {
	var f commands.AssignmentUoWFactory = FuncAssignmentUoWFactory(func() commands.AssignmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignByAreaCommandHandler(f)
}

func (c *CompositionRoot) CreateRunAssignmentRulesCommandHandler() commands.RunAssignmentRulesCommandHandler {
	var f commands.RuleRunUoWFactory = FuncRuleRunUoWFactory(func() commands.RuleRunUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRunAssignmentRulesCommandHandler(f)
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateFailDeliveryCommandHandler() commands.FailDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFailDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateDeleteDriverCommandHandler() commands.DeleteDriverCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteDriverCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateRuleCommandHandler() commands.CreateRuleCommandHandler {
	var f commands.FleetUoWFactory = FuncFleetUoWFactory(func() commands.FleetUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateRuleCommandHandler(f)
}

func (c *CompositionRoot) CreatePackageHistoryQueryHandler() queries.PackageHistoryQueryHandler {
	return queries.NewPackageHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateProductivityReportQueryHandler() queries.ProductivityReportQueryHandler {
	return queries.NewProductivityReportQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateInventoryByStatusQueryHandler() queries.InventoryByStatusQueryHandler {
	return queries.NewInventoryByStatusQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateAssignmentLogQueryHandler() queries.AssignmentLogQueryHandler {
	return queries.NewAssignmentLogQueryHandler(c.gormDB)
}

type FuncLedgerUoWFactory func() commands.LedgerUoW

func (f FuncLedgerUoWFactory) Create() commands.LedgerUoW {
	return f()
}

type FuncAssignmentUoWFactory func() commands.AssignmentUoW

func (f FuncAssignmentUoWFactory) Create() commands.AssignmentUoW {
	return f()
}

type FuncRuleRunUoWFactory func() commands.RuleRunUoW

func (f FuncRuleRunUoWFactory) Create() commands.RuleRunUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncFleetUoWFactory func() commands.FleetUoW

func (f FuncFleetUoWFactory) Create() commands.FleetUoW {
	return f()
}
