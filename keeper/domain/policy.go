package domain

import "sync/atomic"

// Policy groups the tunable classification thresholds. It is swapped as a whole on reload.
type Policy struct {
	Classifier            Classifier
	HeavyProcessThreshold float64
	Tabs                  TabEstimator
}

func DefaultPolicy() Policy {
	return Policy{
		Classifier:            DefaultClassifier(),
		HeavyProcessThreshold: DefaultHeavyProcessThresholdMB,
		Tabs:                  DefaultTabEstimator(),
	}
}

// PolicyStore hands the current policy to pollers; each refresh reads it once.
type PolicyStore struct {
	p atomic.Pointer[Policy]
}

func NewPolicyStore(p Policy) *PolicyStore {
	s := &PolicyStore{}
	s.Set(p)
	return s
}

func (s *PolicyStore) Get() Policy {
	return *s.p.Load()
}

func (s *PolicyStore) Set(p Policy) {
	s.p.Store(&p)
}
