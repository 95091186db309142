package convert

func Build() *Handler {
	service := NewService()
	return NewHandler(service)
}
