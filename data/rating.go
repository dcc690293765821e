package data

import (
	"strconv"
	"strings"
)

const (
	MinRating     = 0
	MaxRating     = 5
	DefaultRating = MinRating
)

type Dimension int

const (
	SeatComfort Dimension = iota
	CabinService
	FoodBev
	Entertainment
	GroundService
	ValueForMoney
)

// Dimensions lists every rated dimension in record column order.
var Dimensions = []Dimension{
	SeatComfort,
	CabinService,
	FoodBev,
	Entertainment,
	GroundService,
	ValueForMoney,
}

var dimensionColumns = [...]string{
	"seat_comfort",
	"cabin_service",
	"food_bev",
	"entertainment",
	"ground_service",
	"value_for_money",
}

var dimensionLabels = [...]string{
	"Seat Comfort",
	"Cabin Service",
	"Food & Beverages",
	"Entertainment",
	"Ground Service",
	"Value for money",
}

func (d Dimension) Valid() bool {
	return d >= SeatComfort && d <= ValueForMoney
}

// Column is the record column name the predictor was fitted on.
func (d Dimension) Column() string {
	if !d.Valid() {
		return ""
	}
	return dimensionColumns[d]
}

func (d Dimension) Label() string {
	if !d.Valid() {
		return ""
	}
	return dimensionLabels[d]
}

func (d Dimension) String() string {
	return d.Column()
}

// ClampRating restricts v to the slider bounds.
func ClampRating(v int) int {
	if v < MinRating {
		return MinRating
	}
	if v > MaxRating {
		return MaxRating
	}
	return v
}

// ParseRating reads a slider value. Text that isn't an integer yields the
// default rating; integers outside the bounds are clamped.
func ParseRating(s string) int {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return DefaultRating
	}
	return ClampRating(v)
}
