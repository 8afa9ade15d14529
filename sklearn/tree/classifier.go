package tree

import (
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/mat"

	"github.com/YuminosukeSato/simpledt/core/model"
	"github.com/YuminosukeSato/simpledt/dataset"
	"github.com/YuminosukeSato/simpledt/pkg/errors"
	"github.com/YuminosukeSato/simpledt/pkg/log"
)

const modelName = "DecisionTreeClassifier"

var _ model.Classifier = (*DecisionTreeClassifier)(nil)

// DecisionTreeClassifier はカテゴリ属性に対するID3決定木分類器
type DecisionTreeClassifier struct {
	state  *model.StateManager
	opts   options
	id     string
	logger log.Logger

	root    *Node
	classes []string
}

// NewDecisionTreeClassifier は新しい決定木分類器を作成する
func NewDecisionTreeClassifier(opts ...Option) *DecisionTreeClassifier {
	o := newOptions(opts...)
	id := uuid.New().String()
	return &DecisionTreeClassifier{
		state:  model.NewStateManager(),
		opts:   o,
		id:     id,
		logger: o.logger.With(log.ModelNameKey, modelName, log.EstimatorIDKey, id),
	}
}

// ID はログに出力される推定器IDを返す
func (dt *DecisionTreeClassifier) ID() string {
	return dt.id
}

// candidates は分割候補の属性を返す。指定がなければクラス列以外の全列
func (dt *DecisionTreeClassifier) candidates(width int) []int {
	if dt.opts.candidates != nil {
		return dt.opts.candidates
	}
	return dataset.CandidateIndexes(width, dt.opts.classIndex)
}

// Fit はモデルを訓練データで学習させる
func (dt *DecisionTreeClassifier) Fit(records []dataset.Record) error {
	if len(records) == 0 {
		return errors.NewModelError("DecisionTreeClassifier.Fit", "empty data", errors.ErrEmptyData)
	}
	start := time.Now()
	width := dataset.Width(records)
	candidates := dt.candidates(width)

	dt.logger.Info("Training started",
		log.OperationKey, log.OperationFit,
		log.PhaseKey, log.PhaseTraining,
		log.SamplesKey, len(records),
		log.FeaturesKey, len(candidates),
		log.ClassIndexKey, dt.opts.classIndex,
	)

	root, err := BuildTree(records, candidates, dt.opts.classIndex, dt.opts.defaultClass,
		WithLogger(dt.logger), WithTrace(dt.opts.trace))
	if err != nil {
		dt.logger.Error("Training failed", err, log.OperationKey, log.OperationFit)
		return errors.Wrap(err, "DecisionTreeClassifier.Fit")
	}
	// BuildTree がレコード幅とクラス列を検証済み
	classes, err := dataset.AttributeValues(records, dt.opts.classIndex)
	if err != nil {
		return errors.Wrap(err, "DecisionTreeClassifier.Fit")
	}

	dt.root = root
	dt.classes = classes
	dt.state.SetDimensions(width, len(records))
	dt.state.SetFitted()

	dt.logger.Info("Training completed",
		log.OperationKey, log.OperationFit,
		log.DepthKey, root.Depth(),
		log.LeavesKey, root.NLeaves(),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return nil
}

// Predict は各レコードのクラスラベルを予測する
func (dt *DecisionTreeClassifier) Predict(records []dataset.Record) ([]Label, error) {
	if err := dt.state.RequireFitted(modelName, "Predict"); err != nil {
		return nil, err
	}
	preds, err := PredictAll(dt.root, records, dt.opts.defaultClass)
	if err != nil {
		return nil, err
	}
	dt.logger.Debug("Prediction completed",
		log.OperationKey, log.OperationPredict,
		log.PhaseKey, log.PhaseInference,
		log.PredsKey, len(preds),
	)
	return preds, nil
}

// PredictOne は1件のレコードのクラスラベルを予測する
func (dt *DecisionTreeClassifier) PredictOne(record dataset.Record) (Label, error) {
	if err := dt.state.RequireFitted(modelName, "PredictOne"); err != nil {
		return NoLabel, err
	}
	return Predict(dt.root, record, dt.opts.defaultClass)
}

// ClassificationAccuracy は正解数・不正解数・正解率を返す
func (dt *DecisionTreeClassifier) ClassificationAccuracy(records []dataset.Record) (correct, incorrect int, accuracy float64, err error) {
	if err := dt.state.RequireFitted(modelName, "ClassificationAccuracy"); err != nil {
		return 0, 0, 0, err
	}
	correct, incorrect, accuracy, err = ClassificationAccuracy(dt.root, records, dt.opts.classIndex, dt.opts.defaultClass)
	if err != nil {
		return 0, 0, 0, err
	}
	dt.logger.Info("Evaluation completed",
		log.OperationKey, log.OperationScore,
		log.PhaseKey, log.PhaseTesting,
		log.CorrectKey, correct,
		log.IncorrectKey, incorrect,
		log.AccuracyKey, accuracy,
	)
	return correct, incorrect, accuracy, nil
}

// Score は正解率を返す
func (dt *DecisionTreeClassifier) Score(records []dataset.Record) (float64, error) {
	_, _, accuracy, err := dt.ClassificationAccuracy(records)
	return accuracy, err
}

// FitDense は数値でコード化されたカテゴリ行列で学習する。
// X の各セルと y の値は文字列トークンとして扱われ、クラス列は X の最後の列の次に置かれる。
// class_index はこの列位置に更新される。別の位置が明示的に指定されている場合はエラー。
// 分割候補の指定はそのまま使われる。
func (dt *DecisionTreeClassifier) FitDense(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("DecisionTreeClassifier.FitDense", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("DecisionTreeClassifier.FitDense", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("DecisionTreeClassifier.FitDense", "y must be a column vector")
	}
	if dt.opts.classIndexSet && dt.opts.classIndex != c {
		return errors.NewValidationError("class_index", "FitDense places the class after the last column of X", dt.opts.classIndex)
	}

	records := make([]dataset.Record, r)
	for i := 0; i < r; i++ {
		rec := make(dataset.Record, c+1)
		for j := 0; j < c; j++ {
			rec[j] = formatCode(X.At(i, j))
		}
		rec[c] = formatCode(y.At(i, 0))
		records[i] = rec
	}
	dt.opts.classIndex = c
	return dt.Fit(records)
}

// PredictDense は FitDense で学習したモデルで予測する。予測できない行は NaN になる。
func (dt *DecisionTreeClassifier) PredictDense(X mat.Matrix) (*mat.VecDense, error) {
	if err := dt.state.RequireFitted(modelName, "PredictDense"); err != nil {
		return nil, err
	}
	r, c := X.Dims()
	nAttributes, _ := dt.state.GetDimensions()
	if want := nAttributes - 1; c != want || dt.opts.classIndex != want {
		return nil, errors.NewDimensionError("DecisionTreeClassifier.PredictDense", want, c, 1)
	}

	records := make([]dataset.Record, r)
	for i := 0; i < r; i++ {
		rec := make(dataset.Record, c)
		for j := 0; j < c; j++ {
			rec[j] = formatCode(X.At(i, j))
		}
		records[i] = rec
	}
	preds, err := dt.Predict(records)
	if err != nil {
		return nil, err
	}

	out := mat.NewVecDense(r, nil)
	for i, p := range preds {
		v := math.NaN()
		if p.Valid {
			if f, err := strconv.ParseFloat(p.Value, 64); err == nil {
				v = f
			}
		}
		out.SetVec(i, v)
	}
	return out, nil
}

func formatCode(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Tree は学習済みの木を返す。未学習の場合は nil
func (dt *DecisionTreeClassifier) Tree() *Node {
	return dt.root
}

// Classes は学習時に現れたクラスラベルを出現順に返す
func (dt *DecisionTreeClassifier) Classes() []string {
	out := make([]string, len(dt.classes))
	copy(out, dt.classes)
	return out
}

// IsFitted はモデルが学習済みかどうかを返す
func (dt *DecisionTreeClassifier) IsFitted() bool {
	return dt.state.IsFitted()
}

// GetDepth は木の深さを返す
func (dt *DecisionTreeClassifier) GetDepth() int {
	return dt.root.Depth()
}

// GetNLeaves は葉の数を返す
func (dt *DecisionTreeClassifier) GetNLeaves() int {
	return dt.root.NLeaves()
}

// GetParams はハイパーパラメータを返す
func (dt *DecisionTreeClassifier) GetParams() map[string]interface{} {
	params := map[string]interface{}{
		"class_index": dt.opts.classIndex,
		"trace":       dt.opts.trace,
	}
	if dt.opts.candidates != nil {
		params["candidate_indexes"] = append([]int(nil), dt.opts.candidates...)
	}
	if dt.opts.defaultClass.Valid {
		params["default_class"] = dt.opts.defaultClass.Value
	}
	return params
}

// SetParams はハイパーパラメータを設定する。変更後は再学習が必要
func (dt *DecisionTreeClassifier) SetParams(params map[string]interface{}) error {
	next := dt.opts
	for key, value := range params {
		switch key {
		case "class_index":
			v, ok := value.(int)
			if !ok || v < 0 {
				return errors.NewValidationError(key, "must be a non-negative int", value)
			}
			next.classIndex = v
			next.classIndexSet = true
		case "candidate_indexes":
			v, ok := value.([]int)
			if !ok {
				return errors.NewValidationError(key, "must be []int", value)
			}
			next.candidates = append([]int(nil), v...)
		case "default_class":
			switch v := value.(type) {
			case string:
				next.defaultClass = NewLabel(v)
			case nil:
				next.defaultClass = NoLabel
			default:
				return errors.NewValidationError(key, "must be a string or nil", value)
			}
		case "trace":
			v, ok := value.(int)
			if !ok {
				return errors.NewValidationError(key, "must be an int", value)
			}
			next.trace = v
		default:
			return errors.NewValidationError(key, "unknown parameter", value)
		}
	}
	dt.opts = next
	dt.root = nil
	dt.classes = nil
	dt.state.Reset()
	return nil
}

// State は学習状態とハイパーパラメータを返す
func (dt *DecisionTreeClassifier) State() model.ModelState {
	state := dt.state.GetState()
	state.Params = dt.GetParams()
	return state
}

// String は学習済みの木を属性インデックス付きで表示する
func (dt *DecisionTreeClassifier) String() string {
	return dt.Format(nil)
}

// Format は属性名と値の説明を使って木を表示する
func (dt *DecisionTreeClassifier) Format(attrs []dataset.Attribute) string {
	if !dt.IsFitted() {
		return modelName + "(not fitted)\n"
	}
	return dt.root.Format(attrs)
}
