package srv

import (
	"github.com/seriousplay/MegaSpace/pkg/ai"
	"github.com/seriousplay/MegaSpace/pkg/auth"
)

type Srv struct {
	ai       ai.ChatDriver
	resolver auth.Resolver
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() ai.ChatDriver {
	return s.ai
}

// ReloadAI 运行时替换补全驱动
func (s *Srv) ReloadAI(driver ai.ChatDriver) {
	s.ai = driver
}

func (s *Srv) Auth() auth.Resolver {
	return s.resolver
}

func ApplyAuth(resolver auth.Resolver) ApplyFunc {
	return func(s *Srv) {
		s.resolver = resolver
	}
}
