package material

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"

	"github.com/avaliapro/avaliapro-lambda/internal/config"
	"github.com/avaliapro/avaliapro-lambda/internal/ia"
)

var (
	ErrMaterialNaoEncontrado = errors.New("material não encontrado")
	ErrConteudoVazio         = errors.New("a IA não retornou conteúdo para o material")
)

// Invocador é o contrato mínimo que o serviço precisa do provedor de IA.
type Invocador interface {
	Invoke(ctx context.Context, prompt string, anexos []ia.Anexo) (texto string, modelo string, err error)
}

// UsoRecorder registra o consumo de geração por usuário.
type UsoRecorder interface {
	RegistrarGeracao(ctx context.Context, userID uuid.UUID, recurso, modelo string, sucesso bool)
}

type MaterialService interface {
	Gerar(ctx context.Context, userID uuid.UUID, req GerarMaterialRequest) (*MaterialGerado, error)
	Salvar(ctx context.Context, m *Material) error
	ListarPorUsuario(ctx context.Context, userID string) ([]*Material, error)
	Buscar(ctx context.Context, id string) (*Material, error)
	Atualizar(ctx context.Context, id string, req AtualizarMaterialRequest) (*Material, error)
	Deletar(ctx context.Context, id string) error
}

type materialService struct {
	repo      MaterialRepository
	invocador Invocador
	uso       UsoRecorder
}

func NewService(repo MaterialRepository, invocador Invocador, uso UsoRecorder) MaterialService {
	return &materialService{
		repo:      repo,
		invocador: invocador,
		uso:       uso,
	}
}

func (s *materialService) Gerar(ctx context.Context, userID uuid.UUID, req GerarMaterialRequest) (*MaterialGerado, error) {
	log := config.WithContext(ctx)
	log.Infof("Gerando material do tipo %s...", req.Tipo)

	prompt := BuildPromptMaterial(req)

	texto, modelo, err := s.invocador.Invoke(ctx, prompt, nil)
	if err != nil {
		s.registrar(ctx, userID, req.Tipo, modelo, false)
		return nil, err
	}

	conteudo := strings.TrimSpace(texto)
	if conteudo == "" {
		log.Warn("Modelo respondeu sem conteúdo para o material")
		s.registrar(ctx, userID, req.Tipo, modelo, false)
		return nil, ErrConteudoVazio
	}

	s.registrar(ctx, userID, req.Tipo, modelo, true)
	log.Infof("Material gerado com o modelo %s", modelo)

	return &MaterialGerado{Conteudo: conteudo, Modelo: modelo}, nil
}

func (s *materialService) registrar(ctx context.Context, userID uuid.UUID, tipo TipoMaterial, modelo string, sucesso bool) {
	if s.uso == nil {
		return
	}
	s.uso.RegistrarGeracao(ctx, userID, string(tipo), modelo, sucesso)
}

func (s *materialService) Salvar(ctx context.Context, m *Material) error {
	log := config.WithContext(ctx)
	log.Info("Salvando material...")

	if err := s.repo.Create(m); err != nil {
		log.Errorf("Erro ao salvar material: %v", err)
		return err
	}
	return nil
}

func (s *materialService) ListarPorUsuario(ctx context.Context, userID string) ([]*Material, error) {
	return s.repo.ListByUser(userID)
}

func (s *materialService) Buscar(ctx context.Context, id string) (*Material, error) {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNaoEncontrado
	}
	return m, nil
}

func (s *materialService) Atualizar(ctx context.Context, id string, req AtualizarMaterialRequest) (*Material, error) {
	log := config.WithContext(ctx)

	m, err := s.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMaterialNaoEncontrado
	}

	if req.Titulo != "" {
		m.Titulo = req.Titulo
	}
	if req.Conteudo != "" {
		m.Conteudo = req.Conteudo
	}

	if err := s.repo.Update(m); err != nil {
		log.Errorf("Erro ao atualizar material: %v", err)
		return nil, err
	}
	return m, nil
}

func (s *materialService) Deletar(ctx context.Context, id string) error {
	m, err := s.repo.GetByID(id)
	if err != nil {
		return err
	}
	if m == nil {
		return ErrMaterialNaoEncontrado
	}
	return s.repo.Delete(id)
}
