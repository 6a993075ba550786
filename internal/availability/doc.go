// Package availability - движок доступности интервалов столов.
//
// Все функции чистые: не выполняют I/O, не изменяют входные срезы и
// используются всеми местами, где нужны генерация сетки слотов, проверка
// пересечений, слияние интервалов и группировка бронирований.
package availability
