package registry

// Module groups registrations so they can be applied to a registry in one
// call. Included modules are applied first, in the order they were added.
type Module struct {
	name       string
	entries    []func(r *Registry) error
	submodules []*Module
}

func NewModule(name string) *Module {
	return &Module{
		name: name,
	}
}

func (m *Module) Name() string {
	return m.name
}

func (m *Module) Include(submodule *Module) *Module {
	m.submodules = append(m.submodules, submodule)
	return m
}

func (m *Module) apply(r *Registry) error {
	for _, sub := range m.submodules {
		if err := sub.apply(r); err != nil {
			return err
		}
	}

	for _, entry := range m.entries {
		if err := entry(r); err != nil {
			return err
		}
	}

	return nil
}

// Apply applies modules in order and stops at the first failure.
// Registrations made before the failure stay in place.
func (r *Registry) Apply(modules ...*Module) error {
	for _, m := range modules {
		if err := m.apply(r); err != nil {
			return errModuleApplyFailed(m.name, err)
		}
	}
	return nil
}

func errModuleApplyFailed(moduleName string, cause error) *Error {
	return newError(
		ErrCodeModuleApplyFailed,
		"failed to apply module "+moduleName,
		cause,
	)
}

func ModulePut[T any](m *Module, builder Builder[T], opts ...PutOption) *Module {
	m.entries = append(
		m.entries, func(r *Registry) error {
			return Put(r, builder, opts...)
		},
	)
	return m
}

func ModulePutValue[T any](m *Module, value T, opts ...PutOption) *Module {
	m.entries = append(
		m.entries, func(r *Registry) error {
			return PutValue(r, value, opts...)
		},
	)
	return m
}

func ModuleBind[I, T any](m *Module, opts ...PutOption) *Module {
	m.entries = append(
		m.entries, func(r *Registry) error {
			return Bind[I, T](r, opts...)
		},
	)
	return m
}
