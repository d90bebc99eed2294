// Package player содержит компоненты для управления воспроизведением аудио
package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/hazadus/moodvibe/internal/audio"
)

const (
	// SampleRate - частота, на которой работают динамики
	SampleRate beep.SampleRate = 44100
	// resampleQuality - качество передискретизации для файлов с другой частотой
	resampleQuality = 4
)

// ErrClosed возвращается при попытке воспроизведения после Close
var ErrClosed = errors.New("плеер закрыт")

// Status представляет текущий статус плеера
type Status struct {
	Current   time.Duration // Текущая позиция
	Total     time.Duration // Общая продолжительность
	IsPlaying bool          // Воспроизводится ли трек
}

// Player - единственный слот вывода звука: одновременно активен не более одного трека
type Player struct {
	// Каналы для обратной связи
	progressChan chan Status
	doneChan     chan bool

	// Внутреннее состояние
	ctx           context.Context
	cancel        context.CancelFunc
	mutex         sync.RWMutex
	isInitialized bool
	isPaused      bool
	currentPath   string
	generation    int

	// Компоненты для воспроизведения
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
}

// NewPlayer создает новый экземпляр плеера
func NewPlayer() *Player {
	ctx, cancel := context.WithCancel(context.Background())
	return &Player{
		progressChan: make(chan Status, 1),
		doneChan:     make(chan bool, 1),
		ctx:          ctx,
		cancel:       cancel,
	}
}

// Progress возвращает канал для получения обновлений прогресса
func (p *Player) Progress() <-chan Status {
	return p.progressChan
}

// Done возвращает канал с сигналами о завершении трека
func (p *Player) Done() <-chan bool {
	return p.doneChan
}

// Play начинает воспроизведение файла.
// При ошибке ничего не остается активным.
func (p *Player) Play(path string) error {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	// Останавливаем текущее воспроизведение, если есть
	p.stopInternal()

	if p.ctx.Err() != nil {
		return ErrClosed
	}

	streamer, format, err := audio.Open(path)
	if err != nil {
		return err
	}

	// Инициализируем speaker (только один раз)
	if !p.isInitialized {
		err = speaker.Init(SampleRate, SampleRate.N(time.Second/5))
		if err != nil {
			streamer.Close()
			return fmt.Errorf("ошибка инициализации динамиков: %w", err)
		}
		p.isInitialized = true
	}

	var source beep.Streamer = streamer
	if format.SampleRate != SampleRate {
		source = beep.Resample(resampleQuality, format.SampleRate, SampleRate, streamer)
	}

	p.streamer = streamer
	p.format = format
	p.currentPath = path
	p.ctrl = &beep.Ctrl{Streamer: source}
	p.isPaused = false
	p.generation++
	generation := p.generation

	speaker.Play(beep.Seq(p.ctrl, beep.Callback(func() {
		// Уведомляем о завершении воспроизведения
		select {
		case p.doneChan <- true:
		default:
		}
	})))

	// Запускаем мониторинг прогресса в отдельной горутине
	go p.monitorProgress(generation)

	return nil
}

// Pause приостанавливает или возобновляет воспроизведение
func (p *Player) Pause() {
	p.mutex.Lock()
	defer p.mutex.Unlock()

	if p.ctrl != nil {
		speaker.Lock()
		p.isPaused = !p.isPaused
		p.ctrl.Paused = p.isPaused
		speaker.Unlock()
	}
}

// Stop останавливает воспроизведение. Вызов без активного трека безопасен.
func (p *Player) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	p.stopInternal()
}

// stopInternal внутренний метод остановки (должен вызываться под мьютексом)
func (p *Player) stopInternal() {
	if p.ctrl != nil {
		speaker.Clear()
		p.ctrl = nil
	}

	if p.streamer != nil {
		p.streamer.Close()
		p.streamer = nil
	}

	p.currentPath = ""
	p.isPaused = false
}

// Close закрывает плеер и освобождает ресурсы
func (p *Player) Close() error {
	p.cancel()
	p.Stop()
	return nil
}

// IsPlaying возвращает true, если трек воспроизводится
func (p *Player) IsPlaying() bool {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.ctrl != nil && !p.isPaused
}

// CurrentPath возвращает путь активного трека или пустую строку
func (p *Player) CurrentPath() string {
	p.mutex.RLock()
	defer p.mutex.RUnlock()
	return p.currentPath
}

// monitorProgress отправляет обновления прогресса, пока активен трек своего поколения
func (p *Player) monitorProgress(generation int) {
	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-p.ctx.Done():
			return
		case <-ticker.C:
			p.mutex.RLock()

			if p.generation != generation || p.streamer == nil || p.ctrl == nil {
				p.mutex.RUnlock()
				return
			}

			speaker.Lock()
			status := Status{
				Current:   p.format.SampleRate.D(p.streamer.Position()),
				Total:     p.format.SampleRate.D(p.streamer.Len()),
				IsPlaying: !p.isPaused,
			}
			speaker.Unlock()

			p.mutex.RUnlock()

			select {
			case p.progressChan <- status:
			default:
				// Если канал заблокирован, пропускаем обновление
			}
		}
	}
}
