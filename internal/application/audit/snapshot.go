package audit

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/refricriltecno/inventario-ti/internal/domain/entity"
)

// Campo é um par (nome, valor) da imagem de uma entidade.
type Campo struct {
	Nome  string
	Valor string
}

// Snapshot é a imagem ordenada dos campos declarados de uma entidade no
// momento da captura. A ordem dos campos determina a ordem das entradas
// de auditoria emitidas para uma mesma requisição.
type Snapshot struct {
	campos []Campo
}

// Add acrescenta um campo ao final do snapshot.
func (s *Snapshot) Add(nome, valor string) {
	s.campos = append(s.campos, Campo{Nome: nome, Valor: valor})
}

// Valor devolve o valor de um campo e se ele está presente.
func (s *Snapshot) Valor(nome string) (string, bool) {
	for _, c := range s.campos {
		if c.Nome == nome {
			return c.Valor, true
		}
	}
	return "", false
}

// Campos devolve os campos na ordem de declaração.
func (s *Snapshot) Campos() []Campo {
	return s.campos
}

// Nomes devolve os nomes dos campos na ordem de declaração.
func (s *Snapshot) Nomes() []string {
	nomes := make([]string, 0, len(s.campos))
	for _, c := range s.campos {
		nomes = append(nomes, c.Nome)
	}
	return nomes
}

func fmtData(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format("2006-01-02")
}

func fmtValor(d decimal.Decimal) string {
	if d.IsZero() {
		return ""
	}
	return d.String()
}

func fmtBool(b bool) string {
	if b {
		return "Sim"
	}
	return "Não"
}

// SnapshotAtivo monta a imagem auditável de um Ativo. Senhas entram como
// qualquer outro campo (comportamento herdado do sistema legado).
func SnapshotAtivo(a *entity.Ativo) Snapshot {
	var s Snapshot
	s.Add("patrimonio", a.Patrimonio)
	s.Add("tipo", a.Tipo)
	s.Add("marca", a.Marca)
	s.Add("modelo", a.Modelo)
	s.Add("numero_serie", a.NumeroSerie)
	s.Add("filial", a.Filial)
	s.Add("setor", a.Setor)
	s.Add("responsavel", a.Responsavel)
	s.Add("status", a.Status)
	s.Add("senha_bios", a.SenhaBios)
	s.Add("senha_os", a.SenhaOS)
	s.Add("senha_vpn", a.SenhaVPN)
	s.Add("observacoes", a.Observacoes)
	s.Add("dt_compra", fmtData(a.DtCompra))
	s.Add("dt_garantia", fmtData(a.DtGarantia))
	s.Add("valor", fmtValor(a.Valor))
	s.Add("fornecedor", a.Fornecedor)
	s.Add("nota_fiscal", a.NotaFiscal)
	s.Add("anydesk", a.Anydesk)
	return s
}

// SnapshotCelular monta a imagem auditável de um Celular.
func SnapshotCelular(c *entity.Celular) Snapshot {
	var s Snapshot
	s.Add("patrimonio", c.Patrimonio)
	s.Add("filial", c.Filial)
	s.Add("modelo", c.Modelo)
	s.Add("imei", c.IMEI)
	s.Add("numero", c.Numero)
	s.Add("operadora", c.Operadora)
	s.Add("responsavel", c.Responsavel)
	s.Add("status", c.Status)
	s.Add("observacoes", c.Observacoes)
	s.Add("dt_compra", fmtData(c.DtCompra))
	s.Add("valor", fmtValor(c.Valor))
	return s
}

// SnapshotSoftware monta a imagem auditável de um Software.
func SnapshotSoftware(sw *entity.Software) Snapshot {
	var s Snapshot
	s.Add("nome", sw.Nome)
	s.Add("versao", sw.Versao)
	s.Add("asset_id", sw.AssetID)
	s.Add("tipo_licenca", sw.TipoLicenca)
	s.Add("chave_licenca", sw.ChaveLicenca)
	s.Add("dt_instalacao", fmtData(sw.DtInstalacao))
	s.Add("dt_vencimento", fmtData(sw.DtVencimento))
	s.Add("custo_anual", fmtValor(sw.CustoAnual))
	s.Add("renovacao_automatica", fmtBool(sw.RenovacaoAutomatica))
	s.Add("observacoes", sw.Observacoes)
	s.Add("status", sw.Status)
	return s
}

// SnapshotEmail monta a imagem auditável de um Email.
func SnapshotEmail(e *entity.Email) Snapshot {
	var s Snapshot
	s.Add("endereco", e.Endereco)
	s.Add("tipo", e.Tipo)
	s.Add("vinculo_tipo", e.Vinculo.Tipo)
	s.Add("vinculo_id", e.Vinculo.ID)
	s.Add("usuario", e.Usuario)
	s.Add("senha", e.Senha)
	s.Add("recuperacao", e.Recuperacao)
	s.Add("observacoes", e.Observacoes)
	s.Add("status", e.Status)
	return s
}

// SnapshotFilial monta a imagem auditável de uma Filial.
func SnapshotFilial(f *entity.Filial) Snapshot {
	var s Snapshot
	s.Add("nome", f.Nome)
	s.Add("tipo", f.Tipo)
	s.Add("endereco", f.Endereco)
	s.Add("cidade", f.Cidade)
	s.Add("estado", f.Estado)
	s.Add("telefone", f.Telefone)
	s.Add("ativo", fmtBool(f.Ativo))
	return s
}
