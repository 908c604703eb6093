package cache

import (
	"context"
	"errors"
)

// Tiered reads through stores front to back and back-fills the faster
// tiers on a hit. Writes go to every tier.
type Tiered struct {
	tiers []Store
}

// NewTiered orders tiers fastest first.
func NewTiered(tiers ...Store) *Tiered {
	return &Tiered{tiers: tiers}
}

func (t *Tiered) Get(ctx context.Context, key string, dst any) (bool, error) {
	var errs []error
	for i, s := range t.tiers {
		hit, err := s.Get(ctx, key, dst)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if !hit {
			continue
		}
		for _, front := range t.tiers[:i] {
			if err := front.Set(ctx, key, dst); err != nil {
				errs = append(errs, err)
			}
		}
		return true, errors.Join(errs...)
	}
	return false, errors.Join(errs...)
}

func (t *Tiered) Set(ctx context.Context, key string, value any) error {
	var errs []error
	for _, s := range t.tiers {
		if err := s.Set(ctx, key, value); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Tiered) Delete(ctx context.Context, key string) error {
	var errs []error
	for _, s := range t.tiers {
		if err := s.Delete(ctx, key); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

func (t *Tiered) Clear(ctx context.Context) error {
	var errs []error
	for _, s := range t.tiers {
		if err := s.Clear(ctx); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
