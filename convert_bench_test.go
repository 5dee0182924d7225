package coerce

import (
	"testing"
	"time"
)

func BenchmarkTryConvert_StringToInt(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := TryConvert[string, int]("42", nil); !ok {
			b.Fatal("conversion failed")
		}
	}
}

func BenchmarkTryConvert_IntToString(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := TryConvert[int, string](1234567, nil); !ok {
			b.Fatal("conversion failed")
		}
	}
}

func BenchmarkTryConvert_Identity(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := TryConvert[int64, int64](42, nil); !ok {
			b.Fatal("conversion failed")
		}
	}
}

func BenchmarkTryConvert_StringToTime(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := TryConvert[string, time.Time]("2023-01-15T12:30:45Z", nil); !ok {
			b.Fatal("conversion failed")
		}
	}
}

func BenchmarkTryConvert_NullableTarget(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, ok := TryConvert[string, *int]("42", nil); !ok {
			b.Fatal("conversion failed")
		}
	}
}
