package metrics

// Accuracy returns the fraction of predictions equal to the true labels.
// Predicted labels are compared as float64, so label 1.0 matches 1.
func Accuracy(yTrue []float64, yPred []uint8) (float64, error) {
	if err := checkPair("Accuracy", len(yTrue), len(yPred)); err != nil {
		return 0, err
	}

	correct := 0
	for i, label := range yTrue {
		if label == float64(yPred[i]) {
			correct++
		}
	}
	return float64(correct) / float64(len(yTrue)), nil
}
