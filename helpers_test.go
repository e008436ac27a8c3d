package foodidx

import "strconv"

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
