package gmix

import (
	"testing"

	"github.com/cwbudde/algo-gmix/jacobian"
)

var benchSink float64

func BenchmarkGaussEval(b *testing.B) {
	g, err := NewGauss2D(1.0, 0, 0, 4.0, 0.5, 4.0)
	if err != nil {
		b.Fatalf("NewGauss2D: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sum float64
	for i := range b.N {
		sum += g.Eval(float64(i%10), 0.5)
	}
	benchSink = sum
}

func BenchmarkGMixEvalExp(b *testing.B) {
	m, err := NewModel([]float64{0, 0, 0.1, 0, 8.0, 1.0}, ModelExp)
	if err != nil {
		b.Fatalf("NewModel: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sum float64
	for i := range b.N {
		sum += m.Eval(float64(i%10), 0.5)
	}
	benchSink = sum
}

func BenchmarkMakeImage(b *testing.B) {
	m, err := NewModel([]float64{24, 24, 0.1, 0, 8.0, 1.0}, ModelExp)
	if err != nil {
		b.Fatalf("NewModel: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		im, err := m.MakeImage(48, 48)
		if err != nil {
			b.Fatalf("MakeImage: %v", err)
		}
		benchSink = im.At(24, 24)
	}
}

func BenchmarkLogLikeJacobian(b *testing.B) {
	m, err := NewModel([]float64{24, 24, 0.1, 0, 8.0, 1.0}, ModelExp)
	if err != nil {
		b.Fatalf("NewModel: %v", err)
	}

	img, err := m.MakeImage(48, 48)
	if err != nil {
		b.Fatalf("MakeImage: %v", err)
	}
	wt, err := NewImage(48, 48)
	if err != nil {
		b.Fatalf("NewImage: %v", err)
	}
	wt.AddScalar(1)
	jac := jacobian.Unit(0, 0)

	b.ReportAllocs()
	b.ResetTimer()

	for range b.N {
		res, err := m.LogLikeJacobian(img, wt, jac)
		if err != nil {
			b.Fatalf("LogLikeJacobian: %v", err)
		}
		benchSink = res.LogLike
	}
}
