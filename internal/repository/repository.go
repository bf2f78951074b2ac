package repository

import "errors"

// ErrNotFound indica que no existe un registro para la consulta dada.
var ErrNotFound = errors.New("record not found")
