package wal

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sync"
)

// rw-r--r-- (擁有者讀寫，其他人唯讀)
const FileModeReadOnly fs.FileMode = 0644

// WAL 以 JSON Lines 追加寫入的 Write-Ahead Log
type WAL struct {
	file *os.File
	mu   sync.Mutex
	// records: 目前檔案中的紀錄數
	records int
}

// Open 開啟或建立一個 WAL 檔案
// O_APPEND 每次寫入時自動跳到文件末尾
func Open(path string) (*WAL, error) {
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_RDWR, FileModeReadOnly)
	if err != nil {
		return nil, fmt.Errorf("open wal %s: %w", path, err)
	}
	return &WAL{file: file}, nil
}

// Append 寫入一筆紀錄並強制刷入硬碟，回傳後紀錄即已落盤
func (w *WAL) Append(v any) error {
	line, err := json.Marshal(v)
	if err != nil {
		return err
	}
	line = append(line, '\n')

	w.mu.Lock()
	defer w.mu.Unlock()
	if _, err := w.file.Write(line); err != nil {
		return err
	}
	if err := w.file.Sync(); err != nil {
		return err
	}
	w.records++
	return nil
}

// Replay 由檔頭依序讀出所有紀錄
// callback 一次只收到一筆，避免一次將所有資料載入記憶體
func (w *WAL) Replay(callback func(raw json.RawMessage) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, err := w.file.Seek(0, io.SeekStart); err != nil {
		return err
	}
	decoder := json.NewDecoder(w.file)
	n := 0
	for {
		var raw json.RawMessage
		if err := decoder.Decode(&raw); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("wal record %d: %w", n+1, err)
		}
		n++
		if err := callback(raw); err != nil {
			return err
		}
	}
	w.records = n
	return nil
}

// Len 回傳已知的紀錄數 (Replay 後才準確)
func (w *WAL) Len() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.records
}

// Close 關閉檔案
func (w *WAL) Close() error {
	return w.file.Close()
}
