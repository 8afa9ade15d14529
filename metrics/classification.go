// Package metrics は分類器の評価指標を提供します。
package metrics

import (
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/simpledt/pkg/errors"
)

// AccuracyCounts は正解数と不正解数を数える。
// ラベルは == で比較されるため、予測なしを表す値は実ラベルと一致しない型で渡すこと。
func AccuracyCounts[T comparable](actual, predicted []T) (correct, incorrect int, err error) {
	n := len(actual)
	if n == 0 {
		return 0, 0, errors.NewModelError("AccuracyCounts", "no labels to compare", errors.ErrEmptyData)
	}
	if len(predicted) != n {
		return 0, 0, errors.NewDimensionError("AccuracyCounts", n, len(predicted), 0)
	}

	for i := range actual {
		if actual[i] == predicted[i] {
			correct++
		}
	}
	return correct, n - correct, nil
}

// Accuracy は正解率を返す。合計が0の場合は未定義のため警告を出して0を返す。
func Accuracy(correct, incorrect int) float64 {
	total := correct + incorrect
	if total == 0 {
		errors.Warn(errors.NewUndefinedMetricWarning("accuracy", "no samples", 0))
		return 0
	}
	return float64(correct) / float64(total)
}

// AccuracyScore は正解率（Accuracy）を計算する
func AccuracyScore[T comparable](actual, predicted []T) (float64, error) {
	correct, incorrect, err := AccuracyCounts(actual, predicted)
	if err != nil {
		return 0, err
	}
	return Accuracy(correct, incorrect), nil
}

// ConfusionMatrix は混同行列を計算する。
// 行が実ラベル、列が予測ラベルで、順序は labels に従う。labels に含まれないラベルは数えない。
func ConfusionMatrix[T comparable](actual, predicted []T, labels []T) (*mat.Dense, error) {
	n := len(actual)
	if n == 0 {
		return nil, errors.NewModelError("ConfusionMatrix", "no labels to compare", errors.ErrEmptyData)
	}
	if len(predicted) != n {
		return nil, errors.NewDimensionError("ConfusionMatrix", n, len(predicted), 0)
	}
	if len(labels) == 0 {
		return nil, errors.NewValueError("ConfusionMatrix", "labels must not be empty")
	}

	pos := make(map[T]int, len(labels))
	for i, l := range labels {
		pos[l] = i
	}
	cm := mat.NewDense(len(labels), len(labels), nil)
	for i := range actual {
		r, okR := pos[actual[i]]
		c, okC := pos[predicted[i]]
		if !okR || !okC {
			continue
		}
		cm.Set(r, c, cm.At(r, c)+1)
	}
	return cm, nil
}
