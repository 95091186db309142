package rabbitmq

// WorkerService is a long-running background service driven by a queue consumer.
type WorkerService interface {
	GetServiceName() string
	StartService()
}
