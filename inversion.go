// Package inversion is a small inversion-of-control container.
//
// Classes are published in a Catalog from their constructors. Container.Get
// builds an instance of a class and auto-wires every constructor parameter
// typed as another class, recursively. Callers can override single
// parameters positionally, or register a ready instance that Get then
// returns in place of building one.
//
//	catalog := inversion.NewCatalog()
//	catalog.Provide(NewEngine)
//	catalog.Provide(NewCar) // func NewCar(e *Engine) *Car
//
//	c := inversion.New(inversion.WithCatalog(catalog))
//	car, err := inversion.Get[*Car](c)
package inversion
