package application

import "context"

type HitCounter interface {
	Inc(ctx context.Context)
}
