package inversion

// Registration pairs a class identifier with the instance to register for it.
type Registration struct {
	Class    string
	Instance any
}

// Entry creates a Registration for batch registration.
func Entry(class string, instance any) Registration {
	return Registration{
		Class:    class,
		Instance: instance,
	}
}

// Value creates a Registration under ClassOf[T]().
func Value[T any](instance T) Registration {
	return Entry(ClassOf[T](), instance)
}

// RegisterAll registers multiple instances in a single call.
// Later entries for the same class overwrite earlier ones.
//
// Example:
//
//	inversion.RegisterAll(c,
//	    inversion.Value[*Engine](engine),
//	    inversion.Entry("Config", cfg),
//	)
func RegisterAll(c *Container, registrations ...Registration) {
	for _, reg := range registrations {
		c.Register(reg.Class, reg.Instance)
	}
}
