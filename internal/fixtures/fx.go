package fixtures

import "go.uber.org/fx"

var Module = fx.Module("fixtures",
	fx.Provide(func() Provider {
		return NewStatic()
	}),
)
