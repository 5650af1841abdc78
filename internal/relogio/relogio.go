package relogio

import "time"

// FusoPadrao é o fuso de negócio usado quando nenhum outro é configurado.
const FusoPadrao = "America/Sao_Paulo"

// Relogio fornece o "agora" do negócio. Toda lógica de prazo/atraso passa por
// aqui, nunca por time.Now direto, para que os testes possam fixar a data.
type Relogio interface {
	Agora() time.Time
}

// Sistema lê o relógio da máquina convertido para o fuso de negócio.
type Sistema struct {
	Local *time.Location
}

func NovoSistema(nomeFuso string) (*Sistema, error) {
	if nomeFuso == "" {
		nomeFuso = FusoPadrao
	}
	loc, err := time.LoadLocation(nomeFuso)
	if err != nil {
		return nil, err
	}
	return &Sistema{Local: loc}, nil
}

func (s *Sistema) Agora() time.Time {
	return time.Now().In(s.Local)
}

// Fixo devolve sempre o mesmo instante; usado em testes.
type Fixo struct {
	Instante time.Time
}

func (f *Fixo) Agora() time.Time {
	return f.Instante
}

// Data normaliza um instante para meia-noite UTC do dia correspondente no
// local do próprio instante. Datas de vencimento e cortes são comparados
// sempre nessa forma, em Go e em SQL.
func Data(t time.Time) time.Time {
	ano, mes, dia := t.Date()
	return time.Date(ano, mes, dia, 0, 0, 0, 0, time.UTC)
}

// ParseData interpreta um filtro de data opcional (AAAA-MM-DD). Valor vazio
// ou ilegível vira nil; o chamador trata nil como "sem filtro".
func ParseData(s string) *time.Time {
	if s == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil
	}
	d := Data(t)
	return &d
}
