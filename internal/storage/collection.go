package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Collection persiste una coleccion de registros como un array JSON en un
// archivo. Cada operacion serializa o deserializa el archivo completo; el
// mutex cubre el ciclo read-modify-write entero para que dos appends
// concurrentes no se pisen entre si.
type Collection[T any] struct {
	path string
	mu   sync.Mutex
}

// NewCollection crea una coleccion ligada a un archivo JSON.
func NewCollection[T any](path string) *Collection[T] {
	return &Collection[T]{path: path}
}

// ReadAll devuelve todos los registros del archivo. Un archivo ausente o
// corrupto se trata como coleccion vacia, nunca como error.
func (c *Collection[T]) ReadAll() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.readLocked()
}

// WriteAll reemplaza el contenido del archivo con los registros dados.
func (c *Collection[T]) WriteAll(items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.writeLocked(items)
}

// Append agrega un registro al final, bajo el mismo lock que la lectura.
func (c *Collection[T]) Append(item T) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := c.readLocked()
	items = append(items, item)
	return c.writeLocked(items)
}

func (c *Collection[T]) readLocked() []T {
	data, err := os.ReadFile(c.path)
	if err != nil {
		return []T{}
	}
	var items []T
	if err := json.Unmarshal(data, &items); err != nil {
		return []T{}
	}
	if items == nil {
		items = []T{}
	}
	return items
}

func (c *Collection[T]) writeLocked(items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal collection: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", c.path, err)
	}
	return nil
}
