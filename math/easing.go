package math

import (
	"fmt"
	"sort"

	"github.com/spaghettifunk/lina/core"
)

// Easing functions reshape a linear progress x in [0, 1] into accelerated or
// decelerated motion. The formulas are Robert Penner's, as published on
// https://easings.net/. Back and elastic curves overshoot [0, 1] on purpose.

// EasingFunc maps a progress value to an eased one.
type EasingFunc func(x float32) float32

const (
	backC1    float32 = 1.70158
	backC2    float32 = backC1 * 1.525
	backC3    float32 = backC1 + 1.0
	elasticC4 float32 = (2.0 * K_PI) / 3.0
	elasticC5 float32 = (2.0 * K_PI) / 4.5
	bounceN1  float32 = 7.5625
	bounceD1  float32 = 2.75
)

func EaseInSine(x float32) float32 {
	return 1.0 - Cos((x*K_PI)/2.0)
}

func EaseOutSine(x float32) float32 {
	return Sin((x * K_PI) / 2.0)
}

func EaseInOutSine(x float32) float32 {
	return -(Cos(K_PI*x) - 1.0) / 2.0
}

func EaseInQuad(x float32) float32 {
	return x * x
}

func EaseOutQuad(x float32) float32 {
	return 1.0 - (1.0-x)*(1.0-x)
}

func EaseInOutQuad(x float32) float32 {
	if x < 0.5 {
		return 2.0 * x * x
	}
	return 1.0 - Pow(-2.0*x+2.0, 2.0)/2.0
}

func EaseInCubic(x float32) float32 {
	return x * x * x
}

func EaseOutCubic(x float32) float32 {
	return 1.0 - Pow(1.0-x, 3.0)
}

func EaseInOutCubic(x float32) float32 {
	if x < 0.5 {
		return 4.0 * x * x * x
	}
	return 1.0 - Pow(-2.0*x+2.0, 3.0)/2.0
}

func EaseInQuart(x float32) float32 {
	return x * x * x * x
}

func EaseOutQuart(x float32) float32 {
	return 1.0 - Pow(1.0-x, 4.0)
}

func EaseInOutQuart(x float32) float32 {
	if x < 0.5 {
		return 8.0 * x * x * x * x
	}
	return 1.0 - Pow(-2.0*x+2.0, 4.0)/2.0
}

func EaseInQuint(x float32) float32 {
	return x * x * x * x * x
}

func EaseOutQuint(x float32) float32 {
	return 1.0 - Pow(1.0-x, 5.0)
}

func EaseInOutQuint(x float32) float32 {
	if x < 0.5 {
		return 16.0 * x * x * x * x * x
	}
	return 1.0 - Pow(-2.0*x+2.0, 5.0)/2.0
}

func EaseInExpo(x float32) float32 {
	if x == 0.0 {
		return 0.0
	}
	return Pow(2.0, 10.0*x-10.0)
}

func EaseOutExpo(x float32) float32 {
	if x == 1.0 {
		return 1.0
	}
	return 1.0 - Pow(2.0, -10.0*x)
}

func EaseInOutExpo(x float32) float32 {
	switch {
	case x == 0.0:
		return 0.0
	case x == 1.0:
		return 1.0
	case x < 0.5:
		return Pow(2.0, 20.0*x-10.0) / 2.0
	default:
		return (2.0 - Pow(2.0, -20.0*x+10.0)) / 2.0
	}
}

func EaseInCirc(x float32) float32 {
	return 1.0 - Sqrt(1.0-x*x)
}

func EaseOutCirc(x float32) float32 {
	return Sqrt(1.0 - Pow(x-1.0, 2.0))
}

func EaseInOutCirc(x float32) float32 {
	if x < 0.5 {
		return Sqrt(1.0-Pow(1.0-2.0*x, 2.0)) / 2.0
	}
	return (Sqrt(1.0-Pow(-2.0*x+2.0, 2.0)) + 1.0) / 2.0
}

func EaseInBack(x float32) float32 {
	return backC3*x*x*x - backC1*x*x
}

func EaseOutBack(x float32) float32 {
	return 1.0 + backC3*Pow(x-1.0, 3.0) + backC1*Pow(x-1.0, 2.0)
}

func EaseInOutBack(x float32) float32 {
	if x < 0.5 {
		return Pow(2.0*x, 2.0) * ((backC2+1.0)*2.0*x - backC2) / 2.0
	}
	return (Pow(2.0*x-2.0, 2.0)*((backC2+1.0)*(2.0*x-2.0)+backC2) + 2.0) / 2.0
}

func EaseInElastic(x float32) float32 {
	switch x {
	case 0.0:
		return 0.0
	case 1.0:
		return 1.0
	}
	return -Pow(2.0, 10.0*x-10.0) * Sin((x*10.0-10.75)*elasticC4)
}

func EaseOutElastic(x float32) float32 {
	switch x {
	case 0.0:
		return 0.0
	case 1.0:
		return 1.0
	}
	return Pow(2.0, -10.0*x)*Sin((x*10.0-0.75)*elasticC4) + 1.0
}

func EaseInOutElastic(x float32) float32 {
	switch {
	case x == 0.0:
		return 0.0
	case x == 1.0:
		return 1.0
	case x < 0.5:
		return -(Pow(2.0, 20.0*x-10.0) * Sin((20.0*x-11.125)*elasticC5)) / 2.0
	default:
		return (Pow(2.0, -20.0*x+10.0)*Sin((20.0*x-11.125)*elasticC5))/2.0 + 1.0
	}
}

func EaseInBounce(x float32) float32 {
	return 1.0 - EaseOutBounce(1.0-x)
}

func EaseOutBounce(x float32) float32 {
	switch {
	case x < 1.0/bounceD1:
		return bounceN1 * x * x
	case x < 2.0/bounceD1:
		x -= 1.5 / bounceD1
		return bounceN1*x*x + 0.75
	case x < 2.5/bounceD1:
		x -= 2.25 / bounceD1
		return bounceN1*x*x + 0.9375
	default:
		x -= 2.625 / bounceD1
		return bounceN1*x*x + 0.984375
	}
}

func EaseInOutBounce(x float32) float32 {
	if x < 0.5 {
		return (1.0 - EaseOutBounce(1.0-2.0*x)) / 2.0
	}
	return (1.0 + EaseOutBounce(2.0*x-1.0)) / 2.0
}

var easings = map[string]EasingFunc{
	"easeInSine":       EaseInSine,
	"easeOutSine":      EaseOutSine,
	"easeInOutSine":    EaseInOutSine,
	"easeInQuad":       EaseInQuad,
	"easeOutQuad":      EaseOutQuad,
	"easeInOutQuad":    EaseInOutQuad,
	"easeInCubic":      EaseInCubic,
	"easeOutCubic":     EaseOutCubic,
	"easeInOutCubic":   EaseInOutCubic,
	"easeInQuart":      EaseInQuart,
	"easeOutQuart":     EaseOutQuart,
	"easeInOutQuart":   EaseInOutQuart,
	"easeInQuint":      EaseInQuint,
	"easeOutQuint":     EaseOutQuint,
	"easeInOutQuint":   EaseInOutQuint,
	"easeInExpo":       EaseInExpo,
	"easeOutExpo":      EaseOutExpo,
	"easeInOutExpo":    EaseInOutExpo,
	"easeInCirc":       EaseInCirc,
	"easeOutCirc":      EaseOutCirc,
	"easeInOutCirc":    EaseInOutCirc,
	"easeInBack":       EaseInBack,
	"easeOutBack":      EaseOutBack,
	"easeInOutBack":    EaseInOutBack,
	"easeInElastic":    EaseInElastic,
	"easeOutElastic":   EaseOutElastic,
	"easeInOutElastic": EaseInOutElastic,
	"easeInBounce":     EaseInBounce,
	"easeOutBounce":    EaseOutBounce,
	"easeInOutBounce":  EaseInOutBounce,
}

// EasingByName looks an easing function up by its easings.net name, e.g. "easeInOutCubic".
func EasingByName(name string) (EasingFunc, error) {
	f, ok := easings[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, core.ErrUnknownEasing)
	}
	return f, nil
}

// Easings returns a copy of the name to function table.
func Easings() map[string]EasingFunc {
	m := make(map[string]EasingFunc, len(easings))
	for name, f := range easings {
		m[name] = f
	}
	return m
}

// EasingNames returns every registered name in sorted order.
func EasingNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
