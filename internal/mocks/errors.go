package mocks

import "errors"

// ErrDatabase simulates a generic database failure
var ErrDatabase = errors.New("mock: database unavailable")

var errForeignKey = errors.New("mock: product_images.product_id violates foreign key constraint")
