package sanitizer

import (
	"github.com/jackc/pgx/v5/pgtype"
	"go.mongodb.org/mongo-driver/v2/bson"
)

func sanitizeFloat(v float64, c Constraint) (float64, error) {
	if c.Kind() != MaxDecimalPlaces {
		return v, nil
	}
	n, err := c.nonNegativeRef()
	if err != nil {
		return v, err
	}
	return TruncateToDecimalPlaces(v, n), nil
}

// sanitizeNumeric truncates in the numeric's own base-10 precision.
// NULL, NaN and infinite values are returned as is.
func sanitizeNumeric(v pgtype.Numeric, c Constraint) (pgtype.Numeric, error) {
	if c.Kind() != MaxDecimalPlaces {
		return v, nil
	}
	n, err := c.nonNegativeRef()
	if err != nil {
		return v, err
	}
	if !v.Valid || v.NaN || v.InfinityModifier != pgtype.Finite || v.Int == nil {
		return v, nil
	}

	coef, exp := truncateCoefficient(v.Int, int(v.Exp), n)
	return pgtype.Numeric{Int: coef, Exp: int32(exp), Valid: true}, nil
}

// sanitizeDecimal128 truncates in decimal128 precision.
// NaN and infinite values are returned as is.
func sanitizeDecimal128(v bson.Decimal128, c Constraint) (bson.Decimal128, error) {
	if c.Kind() != MaxDecimalPlaces {
		return v, nil
	}
	n, err := c.nonNegativeRef()
	if err != nil {
		return v, err
	}

	coef, exp, err := v.BigInt()
	if err != nil {
		return v, nil
	}

	coef, exp = truncateCoefficient(coef, exp, n)
	d, ok := bson.ParseDecimal128FromBigInt(coef, exp)
	if !ok {
		return v, nil
	}
	return d, nil
}
