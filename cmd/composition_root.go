package cmd

import (
	"log/slog"
	"strings"

	"gorm.io/gorm"

	"ordering/internal/adapters/in/http"
	inkafka "ordering/internal/adapters/in/kafka"
	outkafka "ordering/internal/adapters/out/kafka"
	"ordering/internal/adapters/out/postgres"
	"ordering/internal/adapters/out/postgres/customerrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/restaurantrepo"
	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/services"
	"ordering/internal/jobs"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	orderService *services.OrderService
	logger       *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		orderService: services.NewOrderService(),
		logger:       logger,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(
		c.orderUoWFactory(),
		restaurantrepo.NewGormRestaurantLookup(c.gormDB),
		customerrepo.NewGormCustomerLookup(c.gormDB),
		c.orderService,
	)
}

func (c *CompositionRoot) CreatePayOrderCommandHandler() commands.PayOrderCommandHandler {
	return commands.NewPayOrderCommandHandler(c.orderUoWFactory(), c.orderService)
}

func (c *CompositionRoot) CreateApproveOrderCommandHandler() commands.ApproveOrderCommandHandler {
	return commands.NewApproveOrderCommandHandler(c.orderUoWFactory(), c.orderService)
}

func (c *CompositionRoot) CreateCancelOrderPaymentCommandHandler() commands.CancelOrderPaymentCommandHandler {
	return commands.NewCancelOrderPaymentCommandHandler(c.orderUoWFactory(), c.orderService)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory(), c.orderService)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *http.Server {
	return http.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateTrackOrderQueryHandler(),
	)
}

func (c *CompositionRoot) CreateEventPublisher() (*outkafka.KafkaEventPublisher, error) {
	return outkafka.NewKafkaEventPublisher(
		c.kafkaBrokers(),
		c.config.KafkaPaymentRequestTopic,
		c.config.KafkaApprovalRequestTopic,
	)
}

func (c *CompositionRoot) CreateSagaConsumer() (*inkafka.Consumer, error) {
	payHandler := c.CreatePayOrderCommandHandler()
	approveHandler := c.CreateApproveOrderCommandHandler()
	cancelPaymentHandler := c.CreateCancelOrderPaymentCommandHandler()
	cancelHandler := c.CreateCancelOrderCommandHandler()

	return inkafka.NewConsumer(
		inkafka.ConsumerConfig{
			Brokers:               c.kafkaBrokers(),
			GroupID:               c.config.KafkaConsumerGroup,
			PaymentResponseTopic:  c.config.KafkaPaymentResponseTopic,
			ApprovalResponseTopic: c.config.KafkaApprovalResponseTopic,
		},
		c.logger,
		&payHandler,
		&approveHandler,
		&cancelPaymentHandler,
		&cancelHandler,
	)
}

func (c *CompositionRoot) CreateJobManager(publisher *outkafka.KafkaEventPublisher) *jobs.JobManager {
	return jobs.NewJobManager(
		outboxrepo.NewGormOutboxRepository(c.gormDB),
		publisher,
		c.logger,
	)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) kafkaBrokers() []string {
	return strings.Split(c.config.KafkaHost, ",")
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
