package environment

import (
	"fmt"
	"os"

	"logalert/internal/config"
	"logalert/internal/constants"
	apperrors "logalert/pkg/errors"
)

// LookupFunc has the shape of os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Resolver maps the deployment environment named by PY_ENV to its alert
// topic. The variable is read on every call.
type Resolver struct {
	topics map[string]string
	lookup LookupFunc
}

func NewResolver(cfg config.TopicsConfig) *Resolver {
	return NewResolverWithLookup(cfg, os.LookupEnv)
}

func NewResolverWithLookup(cfg config.TopicsConfig, lookup LookupFunc) *Resolver {
	return &Resolver{
		topics: map[string]string{
			constants.EnvironmentQA:    cfg.QA,
			constants.EnvironmentStage: cfg.Stage,
			constants.EnvironmentProd:  cfg.Prod,
		},
		lookup: lookup,
	}
}

func (r *Resolver) Resolve() (string, error) {
	env, ok := r.lookup(constants.EnvVarEnvironment)
	if !ok {
		return "", apperrors.ErrResolve.WithCause(
			fmt.Errorf("unknown environment: %s is not set", constants.EnvVarEnvironment),
		)
	}

	topic, known := r.topics[env]
	if !known {
		return "", apperrors.ErrResolve.WithCause(fmt.Errorf("unknown environment: %q", env))
	}

	return topic, nil
}
