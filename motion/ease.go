package motion

import (
	"github.com/fogleman/ease"
)

// An Ease remaps normalised progress. Overshoot eases (back, elastic) may
// leave [0,1] transiently, so callers must not clamp the result.
type Ease func(p float64) float64

// Linear is the identity ease.
var Linear = Ease(ease.Linear)

// Out derives the ease-out variant of an ease-in function.
func Out(f Ease) Ease {
	return func(p float64) float64 {
		return 1 - f(1-p)
	}
}

// InOut derives the ease-in-out variant of an ease-in function.
func InOut(f Ease) Ease {
	return func(p float64) float64 {
		if p < 0.5 {
			return f(2*p) / 2
		}
		return 1 - f(2*(1-p))/2
	}
}

// BackWith builds a back ease-in with a configurable overshoot magnitude.
func BackWith(overshoot float64) Ease {
	return func(p float64) float64 {
		return p * p * ((overshoot+1)*p - overshoot)
	}
}

// ElasticWith builds an elastic ease-in with a configurable period.
func ElasticWith(period float64) Ease {
	return Ease(ease.InElasticFunction(period))
}

var eases = map[string]Ease{
	"linear":       ease.Linear,
	"inQuad":       ease.InQuad,
	"outQuad":      ease.OutQuad,
	"inOutQuad":    ease.InOutQuad,
	"inCubic":      ease.InCubic,
	"outCubic":     ease.OutCubic,
	"inOutCubic":   ease.InOutCubic,
	"inQuart":      ease.InQuart,
	"outQuart":     ease.OutQuart,
	"inOutQuart":   ease.InOutQuart,
	"inQuint":      ease.InQuint,
	"outQuint":     ease.OutQuint,
	"inOutQuint":   ease.InOutQuint,
	"inSine":       ease.InSine,
	"outSine":      ease.OutSine,
	"inOutSine":    ease.InOutSine,
	"inExpo":       ease.InExpo,
	"outExpo":      ease.OutExpo,
	"inOutExpo":    ease.InOutExpo,
	"inCirc":       ease.InCirc,
	"outCirc":      ease.OutCirc,
	"inOutCirc":    ease.InOutCirc,
	"inElastic":    ease.InElastic,
	"outElastic":   ease.OutElastic,
	"inOutElastic": ease.InOutElastic,
	"inBack":       ease.InBack,
	"outBack":      ease.OutBack,
	"inOutBack":    ease.InOutBack,
	"inBounce":     ease.InBounce,
	"outBounce":    ease.OutBounce,
	"inOutBounce":  ease.InOutBounce,
}

// Lookup resolves an ease by name. The parameterised families accept
// factory arguments: the elastic eases take a period, the back eases an
// overshoot magnitude. Args given for any other name are ignored and the
// registered ease is returned as-is. Unknown names return an
// EaseNotFoundError.
func Lookup(name string, args ...float64) (Ease, error) {
	if len(args) > 0 {
		switch name {
		case "inElastic":
			return Ease(ease.InElasticFunction(args[0])), nil
		case "outElastic":
			return Ease(ease.OutElasticFunction(args[0])), nil
		case "inOutElastic":
			return Ease(ease.InOutElasticFunction(args[0])), nil
		case "inBack":
			return BackWith(args[0]), nil
		case "outBack":
			return Out(BackWith(args[0])), nil
		case "inOutBack":
			return InOut(BackWith(args[0])), nil
		}
	}

	if f, ok := eases[name]; ok {
		return f, nil
	}
	return nil, &EaseNotFoundError{Name: name}
}

// MustLookup resolves an ease by name and panics when it doesn't exist.
func MustLookup(name string, args ...float64) Ease {
	f, err := Lookup(name, args...)
	if err != nil {
		panic(err)
	}
	return f
}
